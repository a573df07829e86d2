package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID              uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Title           string         `gorm:"size:100;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Instructions    string         `gorm:"type:text" json:"instructions"`
	PreparationTime int            `json:"preparation_time"`
	CookingTime     int            `json:"cooking_time"`
	Servings        int            `json:"servings"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *User          `gorm:"foreignKey:UserID" json:"-"`
	Ingredients     []Ingredient   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ingredient exists only in the context of its owning recipe and is deleted
// with it.
type Ingredient struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name        string    `gorm:"size:100" json:"name"`
	Quantity    string    `gorm:"size:50" json:"quantity"`
	Unit        string    `gorm:"size:50" json:"unit"`
	Description string    `gorm:"type:text" json:"description"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
