package cli

import (
	"context"
	"fmt"
	"log"

	"vaxreg/internal/models"
)

// watch streams live catalogue changes until the user presses Enter.
func (a *App) watch(ctx context.Context) {
	sub, err := a.records.Subscribe(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	defer sub.Close()

	fmt.Println("Watching for changes (press Enter to stop)")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = a.reader.ReadString('\n')
	}()

	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				fmt.Println("Feed closed")
				return
			}
			printEvent(ev)
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func printEvent(ev models.ChangeEvent) {
	switch ev.Type {
	case models.ChangeInsert:
		fmt.Printf("+ %s  %s\n", ev.RecordID, ev.Record.Title)
	case models.ChangeUpdate:
		fmt.Printf("~ %s  %s\n", ev.RecordID, ev.Record.Title)
	case models.ChangeDelete:
		fmt.Printf("- %s\n", ev.RecordID)
	default:
		fmt.Printf("? %s\n", ev.RecordID)
	}
}
