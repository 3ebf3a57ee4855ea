package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"vaxreg/internal/models"
)

func formatRecord(r *models.VaccinationType) string {
	return fmt.Sprintf("%s  %s", r.ID, r.Title)
}

func (a *App) list(ctx context.Context) {
	recs, err := a.records.ListAll(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(recs) == 0 {
		fmt.Println("No records")
		return
	}

	for _, r := range recs {
		fmt.Println(formatRecord(r))
	}
}

func (a *App) show(ctx context.Context, id string) {
	r, err := a.records.GetByID(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("id:          %s\n", r.ID)
	fmt.Printf("title:       %s\n", r.Title)
	fmt.Printf("description: %s\n", r.Description)
	fmt.Printf("created by:  %s\n", r.CreatedBy)
	fmt.Printf("created at:  %s\n", r.CreatedAt.Local())
	fmt.Printf("updated at:  %s\n", r.UpdatedAt.Local())
}

func (a *App) search(ctx context.Context, query string) {
	recs, err := a.records.Search(ctx, query)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(recs) == 0 {
		fmt.Println("No matches")
		return
	}

	for _, r := range recs {
		fmt.Println(formatRecord(r))
	}
}

// requireAdmin gates the mutating commands on the signed-in user's role.
func (a *App) requireAdmin() bool {
	if !a.store.IsLoggedIn() {
		fmt.Println("Sign in first")
		return false
	}
	if !a.store.IsAdmin() {
		fmt.Println("Admin privileges required")
		return false
	}
	return true
}

func (a *App) create(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}

	title, err := getLine(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	description, err := promptBlock(a.reader, "Enter description", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	r, err := a.records.Create(ctx, title, description, a.store.User().ID)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Created %s\n", r.ID)
}

func (a *App) edit(ctx context.Context, id string) {
	if !a.requireAdmin() {
		return
	}

	r, err := a.records.GetByID(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Editing '%s' (title cannot be changed)\n", r.Title)

	description, err := promptBlock(a.reader, "Enter new description", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if _, err := a.records.Update(ctx, id, description); err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Println("Updated")
}

func (a *App) delete(ctx context.Context, id string) {
	if !a.requireAdmin() {
		return
	}

	if err := a.records.Delete(ctx, id); err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Println("Deleted")
}
