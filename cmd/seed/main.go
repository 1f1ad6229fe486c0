package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"thrgacha/internal/model"
	"thrgacha/internal/repository"
	"thrgacha/internal/service"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "thrgacha"
	}
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	roomRepo := repository.NewRoomRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	entryRepo := repository.NewEntryRepo(db)
	participantRepo := repository.NewParticipantRepo(db)

	tokenSvc := service.NewTokenService(tokenRepo)
	roomSvc := service.NewRoomService(roomRepo)
	questionSvc := service.NewQuestionService(questionRepo, roomRepo, tokenSvc)
	entrySvc := service.NewEntryService(entryRepo, participantRepo, roomRepo, baseURL)

	room, err := roomSvc.CreateRoom(ctx, &service.CreateRoomInput{
		Name:          "Lebaran Keluarga 2026",
		Description:   "Kuis THR untuk acara keluarga besar",
		CreatedBy:     "admin_demo",
		WeightingMode: model.WeightingCapacity,
		RewardTiers: []model.RewardTier{
			{Name: "Grand Prize", Weight: 1, THRAmount: 200000},
			{Name: "Big", Weight: 3, THRAmount: 100000},
			{Name: "Medium", Weight: 6, THRAmount: 50000},
			{Name: "Small", Weight: 15, THRAmount: 20000},
			{Name: "Consolation", Weight: 25, THRAmount: 10000},
		},
	})
	if err != nil {
		log.Fatalf("Failed to create room: %v", err)
	}

	questions := []*service.QuestionInput{
		{
			Content:       "Siapa nama kakek buyut dari pihak ayah?",
			Options:       []string{"Haji Usman", "Haji Somad", "Haji Karim", "Haji Yusuf"},
			CorrectAnswer: 0,
			Difficulty:    model.DifficultyBronze,
		},
		{
			Content:       "Di kota mana nenek lahir?",
			Options:       []string{"Bandung", "Yogyakarta", "Surabaya", "Padang"},
			CorrectAnswer: 1,
			Difficulty:    model.DifficultyBronze,
		},
		{
			Content:       "Tahun berapa om dan tante menikah?",
			Options:       []string{"1998", "2001", "2003", "2005"},
			CorrectAnswer: 2,
			Difficulty:    model.DifficultySilver,
		},
		{
			Content:       "Berapa jumlah sepupu di keluarga besar?",
			Options:       []string{"12", "15", "18", "21"},
			CorrectAnswer: 3,
			Difficulty:    model.DifficultySilver,
		},
		{
			Content:       "Apa nama masakan andalan nenek saat Lebaran?",
			Options:       []string{"Rendang", "Opor Ayam", "Sate Padang", "Gulai Kambing"},
			CorrectAnswer: 1,
			Difficulty:    model.DifficultyGold,
		},
	}

	inserted, err := questionSvc.BulkCreateQuestions(ctx, room.ID, questions)
	if err != nil {
		log.Fatalf("Failed to create questions: %v", err)
	}

	entries, err := entrySvc.CreateEntries(ctx, room.ID, "Sepupu", 10)
	if err != nil {
		log.Fatalf("Failed to create entries: %v", err)
	}

	fmt.Printf("Created room '%s' (code %s) with %d questions\n", room.Name, room.Code, inserted)
	fmt.Println("Entry codes:")
	for _, entry := range entries {
		fmt.Printf("  %s  %s  %s\n", entry.Code, entry.Name, entry.EntryURL)
	}
}
