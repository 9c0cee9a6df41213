// main.go - Driver: runs the sample sensor packages through the tracker
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/sstent/ftracker-go/internal/models"
	"github.com/sstent/ftracker-go/internal/workout"
)

// sensorPackage is one reading as it arrives from the tracker: a type code
// and the raw numbers in sensor order.
type sensorPackage struct {
	code   string
	params []float64
}

var packages = []sensorPackage{
	{"SWM", []float64{720, 1, 80, 25, 40}},
	{"RUN", []float64{15000, 1, 75}},
	{"WLK", []float64{9000, 1, 75, 180}},
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	locale := models.LocaleRU
	if v := os.Getenv("FTRACKER_LOCALE"); v != "" {
		locale = models.Locale(v)
	}

	for _, pkg := range packages {
		w, err := workout.New(pkg.code, pkg.params)
		if err != nil {
			log.Fatalf("Failed to read sensor package %s: %v", pkg.code, err)
		}
		fmt.Println(w.Summary().Message(locale))
	}
}
