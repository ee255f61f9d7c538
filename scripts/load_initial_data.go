package main

import (
	"fmt"
	"log"
	"time"

	"football-manager-backend/internal/config"
	"football-manager-backend/internal/database"
	"football-manager-backend/internal/database/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the database with an admin user and a small demo league. Safe to run
// repeatedly: existing rows are matched by username / club name and skipped.

type clubSeed struct {
	Name    string
	Budget  int64
	Players []playerSeed
	Coach   *coachSeed
}

type playerSeed struct {
	FirstName string
	LastName  string
	Email     string
	Born      string
	Salary    int64
	Position  models.Position
}

type coachSeed struct {
	FirstName string
	LastName  string
	Email     string
	Born      string
	Salary    int64
}

var demoClubs = []clubSeed{
	{
		Name:   "Riverside United",
		Budget: 2_000_000,
		Players: []playerSeed{
			{"Marco", "Silva", "marco.silva@riverside.example", "1996-04-12", 120_000, models.PositionForward},
			{"Jonas", "Berg", "jonas.berg@riverside.example", "1999-08-30", 95_000, models.PositionMidfielder},
			{"Tom", "Okafor", "tom.okafor@riverside.example", "2001-01-17", 60_000, models.PositionGoalkeeper},
		},
		Coach: &coachSeed{"Erik", "Lund", "erik.lund@riverside.example", "1968-05-21", 180_000},
	},
	{
		Name:   "Harbor City FC",
		Budget: 1_500_000,
		Players: []playerSeed{
			{"Luca", "Moretti", "luca.moretti@harbor.example", "1997-11-03", 110_000, models.PositionDefender},
			{"Pavel", "Novak", "pavel.novak@harbor.example", "1995-02-09", 85_000, models.PositionMidfielder},
		},
		Coach: &coachSeed{"Maria", "Costa", "maria.costa@harbor.example", "1972-09-14", 150_000},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := seedAdminUser(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	for _, seed := range demoClubs {
		if err := seedClub(db, seed); err != nil {
			log.Fatalf("Failed to seed club %q: %v", seed.Name, err)
		}
	}

	log.Println("Initial data loaded")
}

func seedAdminUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists, skipping")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}
	log.Println("Created admin user (password: admin123, change it)")
	return nil
}

func seedClub(db *gorm.DB, seed clubSeed) error {
	var existing models.Club
	err := db.Where("name = ?", seed.Name).First(&existing).Error
	if err == nil {
		log.Printf("Club %q already exists, skipping", seed.Name)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	club := models.NewClub(seed.Name, decimal.NewFromInt(seed.Budget))

	// Run the roster through the same budget checks the API uses
	players := make([]*models.Player, 0, len(seed.Players))
	for _, p := range seed.Players {
		born, err := time.Parse("2006-01-02", p.Born)
		if err != nil {
			return fmt.Errorf("player %s %s: %w", p.FirstName, p.LastName, err)
		}
		player := &models.Player{
			Employee: models.Employee{
				FirstName:   p.FirstName,
				LastName:    p.LastName,
				Email:       p.Email,
				DateOfBirth: born,
				Salary:      decimal.NewFromInt(p.Salary),
				Version:     1,
			},
			Position: p.Position,
		}
		if err := club.AcceptMember(&player.Employee); err != nil {
			return fmt.Errorf("player %s %s: %w", p.FirstName, p.LastName, err)
		}
		players = append(players, player)
	}

	var coach *models.Coach
	if seed.Coach != nil {
		born, err := time.Parse("2006-01-02", seed.Coach.Born)
		if err != nil {
			return fmt.Errorf("coach %s %s: %w", seed.Coach.FirstName, seed.Coach.LastName, err)
		}
		coach = &models.Coach{
			Employee: models.Employee{
				FirstName:   seed.Coach.FirstName,
				LastName:    seed.Coach.LastName,
				Email:       seed.Coach.Email,
				DateOfBirth: born,
				Salary:      decimal.NewFromInt(seed.Coach.Salary),
				Version:     1,
			},
		}
		if err := club.AcceptMember(&coach.Employee); err != nil {
			return fmt.Errorf("coach %s %s: %w", seed.Coach.FirstName, seed.Coach.LastName, err)
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(club).Error; err != nil {
			return err
		}
		for _, player := range players {
			player.ClubID = &club.ID
			if err := tx.Create(player).Error; err != nil {
				return err
			}
		}
		if coach != nil {
			coach.ClubID = &club.ID
			if err := tx.Create(coach).Error; err != nil {
				return err
			}
		}
		log.Printf("Created club %q with %d players", club.Name, len(players))
		return nil
	})
}
