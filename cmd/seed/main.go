package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"cardguard/internal/config"
	"cardguard/internal/db"
	"cardguard/internal/model"
	"cardguard/internal/repository"
	"cardguard/internal/service"
)

// Demo data for local development: a few clients, one card per variant and
// an operation history that trips both fraud heuristics.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Client{},
		&model.Card{},
		&model.Operation{},
		&model.FraudAlert{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	clientRepo := repository.NewClientRepository(gormDB)
	cardRepo := repository.NewCardRepository(gormDB)
	cardService := service.NewCardService(cardRepo, nil)
	operationService := service.NewOperationService(repository.NewOperationRepository(gormDB), cardService)

	clients := seedClients(ctx, clientRepo)
	cards := seedCards(ctx, cardService, clients)
	seedOperations(ctx, operationService, cards)

	log.Println("Seed completed successfully!")
}

func seedClients(ctx context.Context, repo repository.ClientRepository) []model.Client {
	demo := []struct {
		name, email, phone, password string
	}{
		{"Amina Berrada", "amina@example.com", "+212600000001", "password123"},
		{"Youssef El Fassi", "youssef@example.com", "+212600000002", "password123"},
		{"Sara Benali", "sara@example.com", "+212600000003", "password123"},
	}

	var clients []model.Client
	for _, d := range demo {
		existing, err := repo.FindByEmail(ctx, d.email)
		if err == nil && existing != nil {
			clients = append(clients, *existing)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), 10)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		client := model.Client{
			Name:         d.name,
			Email:        d.email,
			Phone:        d.phone,
			PasswordHash: string(hash),
		}
		if err := repo.Create(ctx, &client); err != nil {
			log.Fatalf("create client %s: %v", d.email, err)
		}
		log.Printf("Created client %s (id=%d)", client.Email, client.ID)
		clients = append(clients, client)
	}
	return clients
}

func seedCards(ctx context.Context, svc service.CardService, clients []model.Client) []model.Card {
	if len(clients) < 3 {
		log.Fatal("expected at least 3 seeded clients")
	}

	specs := []*model.Card{
		model.NewDebitCard(clients[0].ID, nil),
		model.NewCreditCard(clients[1].ID, nil, nil),
		model.NewPrepaidCard(clients[2].ID, decimalPtr(decimal.NewFromInt(250))),
	}

	var cards []model.Card
	for _, spec := range specs {
		card, err := svc.Create(ctx, spec)
		if err != nil {
			log.Fatalf("create card for client %d: %v", spec.ClientID, err)
		}
		log.Printf("Created %s card %s (id=%d)", card.Type, card.Number, card.ID)
		cards = append(cards, *card)
	}
	return cards
}

func seedOperations(ctx context.Context, svc service.OperationService, cards []model.Card) {
	if len(cards) == 0 {
		return
	}
	card := cards[0]

	ops := []struct {
		amount   int64
		opType   model.OperationType
		location string
	}{
		{80, model.OperationTypePurchase, "Casablanca"},
		{1500, model.OperationTypeOnlinePayment, "Casablanca"},
		{40, model.OperationTypeWithdrawal, "Rabat"},
	}
	for _, o := range ops {
		op, err := svc.Record(ctx, card.ID, decimal.NewFromInt(o.amount), o.opType, o.location)
		if err != nil {
			// The first high-amount operation may have suspended the card in
			// a previous fraud sweep; skip rather than fail the seed.
			log.Printf("skip operation on card %d: %v", card.ID, err)
			continue
		}
		log.Printf("Recorded %s of %s at %s (id=%d)", op.Type, op.Amount, op.Location, op.ID)
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
