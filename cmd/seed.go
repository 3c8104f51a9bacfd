package cmd

import (
	"fmt"
	"os"

	"github.com/XenomaCode/MVP-CATERING/internal/database"

	"github.com/doug-martin/goqu/v9"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	username string
	fullname string
	password string
	role     string
}

type seedItem struct {
	id       int
	name     string
	category string
	quantity int
}

// Fixture data for a fresh installation: one admin, one collaborator and the
// starting inventory. Safe to run repeatedly; existing rows are left alone.
var (
	seedUsers = []seedUser{
		{username: "admin", fullname: "Administrador", password: "admin123", role: "admin"},
		{username: "colaborador", fullname: "Colaborador", password: "collab123", role: "collaborator"},
	}

	seedItems = []seedItem{
		{id: 1, name: "Mesa redonda", category: "Mobiliario", quantity: 20},
		{id: 2, name: "Silla plegable", category: "Mobiliario", quantity: 100},
		{id: 3, name: "Mantel blanco", category: "Textiles", quantity: 30},
		{id: 4, name: "Copa de vino", category: "Cristalería", quantity: 150},
		{id: 5, name: "Plato principal", category: "Vajilla", quantity: 200},
	}
)

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load bootstrap users and inventory.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := database.NewPostgresConnection(os.Getenv("DATABASE_URL"))
		if err != nil {
			return err
		}
		defer db.Close()

		goquDB := goqu.New("postgres", db)

		for _, user := range seedUsers {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", user.username, err)
			}

			query := goquDB.Insert("users").
				Rows(goqu.Record{
					"username":      user.username,
					"fullname":      user.fullname,
					"password_hash": string(hashedPassword),
					"role":          user.role,
				}).
				OnConflict(goqu.DoNothing())

			if _, err := query.Executor().Exec(); err != nil {
				return fmt.Errorf("seed user %s: %w", user.username, err)
			}
		}

		for _, item := range seedItems {
			query := goquDB.Insert("inventory_items").
				Rows(goqu.Record{
					"id":       item.id,
					"name":     item.name,
					"category": item.category,
					"quantity": item.quantity,
				}).
				OnConflict(goqu.DoNothing())

			if _, err := query.Executor().Exec(); err != nil {
				return fmt.Errorf("seed inventory item %s: %w", item.name, err)
			}
		}

		// Seeding with explicit ids leaves the sequence behind; realign it.
		if _, err := db.Exec(
			`SELECT setval('inventory_items_id_seq', (SELECT COALESCE(MAX(id), 1) FROM inventory_items))`,
		); err != nil {
			return fmt.Errorf("realign inventory sequence: %w", err)
		}

		fmt.Println("Base de datos inicializada con datos de prueba")
		return nil
	},
}
