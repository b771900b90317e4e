// seed carga datos de un usuario desde archivos CSV (companies, customers, items, invoices)
// usando los mismos import de la API.
//
// Uso: go run ./cmd/seed -email user@example.com -dir ./seed [-latin1]
// Las cabeceras de cada CSV son los nombres JSON de los campos de import (name, gst_number, companyName...).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/tenant"
	"github.com/jhoicas/facturacion-api/internal/application/usecase"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/memory"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/facturacion-api/pkg/config"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del usuario dueño de los datos")
	dir := flag.String("dir", ".", "directorio con los CSV")
	latin1 := flag.Bool("latin1", false, "los CSV están en ISO-8859-1")
	flag.Parse()
	if *email == "" {
		fmt.Fprintln(os.Stderr, "uso: seed -email <email> [-dir <dir>] [-latin1]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	ctx := context.Background()

	var (
		store repository.Store
		tx    repository.TxRunner
	)
	if cfg.DB.Driver == "memory" {
		mem := memory.NewStore()
		store, tx = mem, mem
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		store, tx = postgres.NewStore(pool), postgres.NewTxRunner(pool)
	}

	user, err := store.Users().GetByEmail(ctx, *email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario")
	}
	if user == nil {
		log.Fatal().Str("email", *email).Msg("usuario no encontrado")
	}

	scope := tenant.NewScope(store, nil, log.Component("tenant"))
	l := &loader{
		userID:    user.ID,
		latin1:    *latin1,
		companies: usecase.NewCompanyUseCase(scope, tx),
		items:     usecase.NewItemUseCase(scope),
		customers: billing.NewCustomerUseCase(scope),
		invoices:  billing.NewInvoiceUseCase(scope, tx),
		log:       log.Component("seed"),
	}
	results, err := l.run(ctx, *dir)
	if err != nil {
		log.Fatal().Err(err).Msg("carga interrumpida")
	}

	files := make([]string, 0, len(results))
	for f := range results {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		r := results[f]
		fmt.Printf("%-14s creados=%d duplicados=%d rechazados=%d\n", f, r.Created, r.Skipped, r.Failed)
	}
}
