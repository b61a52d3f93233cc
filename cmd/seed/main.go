package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"sixcities/internal/config"
	"sixcities/internal/database"
	"sixcities/internal/domain"
	"sixcities/internal/repository"
)

var offerTypes = []string{"apartment", "room", "house", "hotel"}

var goods = []string{
	"Wi-Fi", "Washing machine", "Towels", "Heating", "Coffee machine",
	"Baby seat", "Kitchen", "Dishwasher", "Cabel TV", "Fridge",
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM offers")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	users := make([]repository.UserRow, 0, 3)
	for i, email := range []string{"oliver.conner@gmail.com", "sophie@gmail.com", "max.frei@gmail.com"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
		user := repository.UserRow{
			Email:        email,
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("User %d", i+1),
			AvatarURL:    fmt.Sprintf("https://url-to-image/avatar-%d.png", i+1),
			IsPro:        i == 0,
		}
		db.Create(&user)
		users = append(users, user)
	}
	log.Println("Users created, password: 123456")

	log.Println("Creating offers...")
	offerIDs := make([]string, 0, len(domain.Cities)*4)
	for _, city := range domain.Cities {
		for i := 0; i < 4; i++ {
			host := users[rand.Intn(len(users))]
			row := repository.OfferRow{
				ID:           uuid.NewString(),
				Title:        fmt.Sprintf("%s stay #%d in %s", offerTypes[i%len(offerTypes)], i+1, city.Name),
				Type:         offerTypes[i%len(offerTypes)],
				Price:        80 + rand.Intn(520),
				CityName:     city.Name,
				Latitude:     city.Location.Latitude + rand.Float64()*0.02 - 0.01,
				Longitude:    city.Location.Longitude + rand.Float64()*0.02 - 0.01,
				Zoom:         16,
				IsPremium:    rand.Intn(4) == 0,
				Rating:       1 + rand.Float64()*4,
				PreviewImage: fmt.Sprintf("https://url-to-image/offer-%d.jpg", i+1),
				Description:  "A quiet cozy place hidden behind a river by the unique lightness of the city.",
				Bedrooms:     1 + rand.Intn(4),
				MaxAdults:    1 + rand.Intn(6),
				Goods:        goods[:3+rand.Intn(len(goods)-3)],
				Images:       []string{"https://url-to-image/room-1.jpg", "https://url-to-image/room-2.jpg"},
				HostName:     host.Name,
				HostAvatar:   host.AvatarURL,
				HostIsPro:    host.IsPro,
			}
			db.Create(&row)
			offerIDs = append(offerIDs, row.ID)
		}
	}

	log.Println("Creating comments...")
	for _, offerID := range offerIDs {
		for i := 0; i < 1+rand.Intn(3); i++ {
			author := users[rand.Intn(len(users))]
			db.Create(&repository.CommentRow{
				ID:        uuid.NewString(),
				OfferID:   offerID,
				UserID:    author.ID,
				Text:      "The building is green and from 18th century. A quiet cozy house where you will be surrounded by calm.",
				Rating:    1 + rand.Intn(5),
				CreatedAt: time.Now().UTC().Add(-time.Duration(rand.Intn(60*24)) * time.Hour),
			})
		}
	}

	log.Printf("Seed complete: %d offers across %d cities", len(offerIDs), len(domain.Cities))
}
