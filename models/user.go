package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a single document in the users collection. UserID is the
// public identifier ("DM" + zero-padded sequence); the Mongo _id is
// never exposed. The password hash never serializes to JSON.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID   string             `bson:"userID" json:"userID"`
	Name     string             `bson:"name" json:"name"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password,omitempty" json:"-"` // bcrypt hash

	Age       int      `bson:"age,omitempty" json:"age,omitempty"`
	Bio       string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Image     string   `bson:"image,omitempty" json:"image,omitempty"`
	Interests []string `bson:"interests" json:"interests"`

	LikedUsers    []string `bson:"likedUsers" json:"likedUsers"`
	DislikedUsers []string `bson:"dislikedUsers" json:"dislikedUsers"`
}
