// Command demo seeds the configured note store with a month of sample notes.
package main

import (
	"fmt"
	"time"

	"tableflip.dev/calnote/pkg/calendar"
	"tableflip.dev/calnote/pkg/store"
)

var demo = map[int]string{
	1:  "Pay rent",
	4:  "Dentist 9:30",
	9:  "Book club: chapters 4-6",
	14: "Team lunch",
	17: "Renew passport",
	22: "Flight to Lisbon",
	28: "Month end close",
}

func main() {
	p, err := store.Load(nil)
	if err != nil {
		panic(err)
	}

	month := calendar.MonthOf(time.Now())
	for day, text := range demo {
		if err := p.Save(month.Date(day), text); err != nil {
			panic(err)
		}
	}

	notes, err := p.Load()
	if err != nil {
		panic(err)
	}
	for _, date := range notes.Dates() {
		fmt.Println(date, notes[date])
	}
}
