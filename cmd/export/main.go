// Command export downloads a month of assignments and writes it as the same
// Excel workbook the dashboard produces.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"gestor-turnos/internal/calendar"
	"gestor-turnos/internal/client"
	"gestor-turnos/internal/export"
	"gestor-turnos/internal/roster"
	"gestor-turnos/internal/schedule"
	"gestor-turnos/pkg/fechas"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func valorPorDefecto(clave, valor string) string {
	if v := os.Getenv(clave); v != "" {
		return v
	}
	return valor
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("No .env file found: %v", err)
	}

	hoy := time.Now()
	baseURL := flag.String("url", valorPorDefecto("API_URL", "http://localhost:8000"), "base URL of the API")
	anio := flag.Int("year", hoy.Year(), "year to export")
	mes := flag.Int("month", int(hoy.Month()), "month to export (1-12)")
	salida := flag.String("out", "", "output path (default Turnos_<mes>_<year>.xlsx)")
	flag.Parse()

	if *mes < 1 || *mes > 12 {
		logrus.Fatalf("month must be 1-12, got %d", *mes)
	}
	mesCero := *mes - 1

	ctx := context.Background()
	api := client.New(*baseURL)

	personal := roster.NewStore(api)
	personal.Refetch(ctx)
	if msg := personal.Error(); msg != "" {
		logrus.Fatal(msg)
	}

	turnos := schedule.NewStore(api)
	if err := turnos.Cargar(ctx, *anio, mesCero); err != nil {
		logrus.WithError(err).Fatal("Failed to load month")
	}

	festivos, err := api.Festivos(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load festivos")
	}
	activos := map[fechas.Fecha]bool{}
	for _, f := range festivos {
		dm := f.Par()
		if f.EsActivo() && dm.Mes == *mes && dm.Materializable(*anio) {
			activos[dm.EnAnio(*anio)] = true
		}
	}

	grid := calendar.Construir(*anio, mesCero, personal.Agrupar(), turnos, activos)

	ruta := *salida
	if ruta == "" {
		ruta = export.NombreArchivo(grid)
	}
	if err := export.Guardar(grid, ruta); err != nil {
		logrus.WithError(err).Fatal("Failed to write workbook")
	}
	logrus.Infof("Workbook written to %s", ruta)
}
