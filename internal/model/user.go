package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username                string             `bson:"username" json:"username"`
	Email                   string             `bson:"email" json:"email"`
	Password                string             `bson:"password" json:"-"`
	IsVerified              bool               `bson:"is_verified" json:"is_verified"`
	VerificationCode        string             `bson:"verification_code,omitempty" json:"-"`
	VerificationCodeExpires time.Time          `bson:"verification_code_expires,omitempty" json:"-"`
	CreatedAt               time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt               time.Time          `bson:"updated_at" json:"updated_at"`
}

func (User) CollectionName() string {
	return "users"
}
