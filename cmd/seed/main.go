package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ternakku/internal/model"
	"ternakku/internal/service"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "ternakku"
	}
	db := client.Database(dbName)

	now := time.Now()

	// Groups
	groupA := model.Group{
		ID:        primitive.NewObjectID().Hex(),
		Name:      "Kelompok Maju Bersama",
		Village:   "Desa Sukamaju",
		CreatedAt: now,
		UpdatedAt: now,
	}
	groupB := model.Group{
		ID:        primitive.NewObjectID().Hex(),
		Name:      "Kelompok Ternak Sejahtera",
		Village:   "Desa Mekarsari",
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Accounts
	admin := seedUser("admin", "Administrator", model.RoleAdmin, "")
	officer := seedUser("penyuluh1", "Pak Hadi", model.RolePenyuluh, "")
	farmer1 := seedUser("budi", "Pak Budi", model.RolePeternak, groupA.ID)
	farmer2 := seedUser("sari", "Bu Sari", model.RolePeternak, groupA.ID)
	farmer3 := seedUser("joko", "Pak Joko", model.RolePeternak, groupB.ID)

	groupA.OfficerID = officer.ID
	groupA.MemberIDs = []string{farmer1.ID, farmer2.ID}
	groupB.OfficerID = officer.ID
	groupB.MemberIDs = []string{farmer3.ID}

	// Livestock records
	livestock := []interface{}{
		model.Livestock{
			ID:        primitive.NewObjectID().Hex(),
			OwnerID:   farmer1.ID,
			GroupID:   groupA.ID,
			Kind:      "sapi",
			Count:     4,
			Condition: "sehat",
			CreatedAt: now,
			UpdatedAt: now,
		},
		model.Livestock{
			ID:        primitive.NewObjectID().Hex(),
			OwnerID:   farmer3.ID,
			GroupID:   groupB.ID,
			Kind:      "kambing",
			Count:     12,
			Condition: "sehat",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// Submissions in both stored shapes: a current-generation record
	// with half-year period and object answers, and an old record with
	// a bare month number and numeric answers.
	submissions := []interface{}{
		model.Submission{
			ID:             primitive.NewObjectID().Hex(),
			RespondentID:   farmer1.ID,
			RespondentName: farmer1.Name,
			GroupID:        groupA.ID,
			GroupName:      groupA.Name,
			Period:         "first-half",
			Year:           now.Year(),
			Answers: []model.AnswerEntry{
				{QuestionID: "q1", Answer: "5"},
				{QuestionID: "q2", Answer: "4"},
				{QuestionID: "q3", Answer: "5"},
				{QuestionID: "q4", Answer: "3"},
				{QuestionID: "q5", Answer: "4"},
			},
			CreatedAt: now,
		},
		model.Submission{
			ID:             primitive.NewObjectID().Hex(),
			RespondentID:   "r_" + uuid.New().String()[:8],
			RespondentName: "Pak Slamet",
			GroupID:        groupB.ID,
			GroupName:      groupB.Name,
			Period:         3,
			Year:           now.Year() - 1,
			Answers:        []int{4, 4, 3, 5, 4},
			CreatedAt:      now.AddDate(-1, 0, 0),
		},
	}

	users := []interface{}{admin, officer, farmer1, farmer2, farmer3}

	if _, err := db.Collection("users").InsertMany(ctx, users); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	if _, err := db.Collection("groups").InsertMany(ctx, []interface{}{groupA, groupB}); err != nil {
		log.Fatalf("Failed to seed groups: %v", err)
	}
	if _, err := db.Collection("livestock").InsertMany(ctx, livestock); err != nil {
		log.Fatalf("Failed to seed livestock: %v", err)
	}
	if _, err := db.Collection("questionnaire_submissions").InsertMany(ctx, submissions); err != nil {
		log.Fatalf("Failed to seed submissions: %v", err)
	}

	log.Println("Seed complete")
	log.Printf("  users: %d (password for all: password123)", len(users))
	log.Printf("  groups: %s, %s", groupA.Name, groupB.Name)
	log.Printf("  submissions: %d", len(submissions))
}

func seedUser(username, name, role, groupID string) model.User {
	hash, err := service.HashPassword("password123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	now := time.Now()
	return model.User{
		ID:           primitive.NewObjectID().Hex(),
		Username:     username,
		Name:         name,
		Role:         role,
		GroupID:      groupID,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
