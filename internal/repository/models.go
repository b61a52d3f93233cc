package repository

import (
	"time"

	"sixcities/internal/domain"
)

type UserRow struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Name         string
	AvatarURL    string
	IsPro        bool
}

func (UserRow) TableName() string { return "users" }

func (u *UserRow) Info() domain.UserInfo {
	return domain.UserInfo{
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		IsPro:     u.IsPro,
		Email:     u.Email,
	}
}

type OfferRow struct {
	ID           string `gorm:"primaryKey"`
	Title        string
	Type         string
	Price        int
	CityName     string `gorm:"index"`
	Latitude     float64
	Longitude    float64
	Zoom         int
	IsPremium    bool
	Rating       float64
	PreviewImage string
	Description  string
	Bedrooms     int
	MaxAdults    int
	Goods        []string `gorm:"serializer:json"`
	Images       []string `gorm:"serializer:json"`
	HostName     string
	HostAvatar   string
	HostIsPro    bool
}

func (OfferRow) TableName() string { return "offers" }

// city resolves the row's city against the fixed catalog; unknown names fall
// back to a name-only city so a stale row cannot panic the API.
func (o *OfferRow) city() domain.City {
	if c, ok := domain.CityByName(o.CityName); ok {
		return c
	}
	return domain.City{Name: o.CityName}
}

func (o *OfferRow) Offer(isFavorite bool) domain.Offer {
	return domain.Offer{
		ID:           o.ID,
		Title:        o.Title,
		Type:         o.Type,
		Price:        o.Price,
		City:         o.city(),
		Location:     domain.Location{Latitude: o.Latitude, Longitude: o.Longitude, Zoom: o.Zoom},
		IsFavorite:   isFavorite,
		IsPremium:    o.IsPremium,
		Rating:       o.Rating,
		PreviewImage: o.PreviewImage,
	}
}

func (o *OfferRow) Detail(isFavorite bool) domain.OfferDetail {
	return domain.OfferDetail{
		ID:          o.ID,
		Title:       o.Title,
		Type:        o.Type,
		Price:       o.Price,
		City:        o.city(),
		Location:    domain.Location{Latitude: o.Latitude, Longitude: o.Longitude, Zoom: o.Zoom},
		IsFavorite:  isFavorite,
		IsPremium:   o.IsPremium,
		Rating:      o.Rating,
		Description: o.Description,
		Bedrooms:    o.Bedrooms,
		Goods:       o.Goods,
		Host:        domain.Host{Name: o.HostName, AvatarURL: o.HostAvatar, IsPro: o.HostIsPro},
		Images:      o.Images,
		MaxAdults:   o.MaxAdults,
	}
}

type CommentRow struct {
	ID        string `gorm:"primaryKey"`
	OfferID   string `gorm:"index"`
	UserID    int64
	Text      string
	Rating    int
	CreatedAt time.Time

	User *UserRow `gorm:"foreignKey:UserID"`
}

func (CommentRow) TableName() string { return "comments" }

func (c *CommentRow) Comment() domain.Comment {
	out := domain.Comment{
		ID:     c.ID,
		Date:   c.CreatedAt,
		Text:   c.Text,
		Rating: c.Rating,
	}
	if c.User != nil {
		out.User = domain.Host{Name: c.User.Name, AvatarURL: c.User.AvatarURL, IsPro: c.User.IsPro}
	}
	return out
}

type FavoriteRow struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"uniqueIndex:idx_user_offer"`
	OfferID   string `gorm:"uniqueIndex:idx_user_offer"`
	CreatedAt time.Time
}

func (FavoriteRow) TableName() string { return "favorites" }
