package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"flyaway/internal/catalog"
	"flyaway/internal/config"
	api "flyaway/internal/http"
	"flyaway/internal/http/handlers"
	"flyaway/internal/repositories"
	"flyaway/internal/reservation"
	"flyaway/internal/services"
	"flyaway/internal/utils"
	"flyaway/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides APP_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := env.AppAddr
	if addrFlag != "" {
		addr = addrFlag
	}

	hd, cleanup, err := buildHandler(ctx, env)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := api.NewRouter(env, hd, logger)
	if err != nil {
		return err
	}

	go hd.Reservations.Run(ctx, env.SweepInterval(), func(n int) {
		logger.Debug("swept expired reservations", zap.Int("removed", n))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// buildHandler wires the catalog, the stores and the submission backend.
func buildHandler(ctx context.Context, env config.Env) (*handlers.Handler, func(), error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, err
	}
	loc, err := utils.LoadZone(env.DisplayZone)
	if err != nil {
		logger.Warn("unknown display zone, using default", zap.String("zone", env.DisplayZone), zap.Error(err))
		loc, _ = utils.LoadZone("")
	}

	v := validation.New(validation.WithLocation(loc))
	cleanup := func() {}
	var submitter services.Submitter = services.LogSubmitter{}
	if env.SubmissionDSN != "" {
		db, err := config.ConnectDB(ctx, env.SubmissionDSN)
		if err != nil {
			return nil, nil, err
		}
		repo := repositories.ReservationRepository{DB: db}
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		submitter = services.DBSubmitter{Repo: repo}
		cleanup = func() { _ = db.Close() }
		logger.Info("storing submissions in database")
	}

	return &handlers.Handler{
		Catalog:      cat,
		Validator:    v,
		Reservations: reservation.NewStore(env.SessionTTL, nil),
		ReservEnv:    services.NewReservationEnv(cat, v),
		Submitter:    submitter,
		Accounts:     services.NewAccountDirectory(0),
		Tokens:       services.TokenIssuer{Secret: env.SessionSecret},
		AuthDelay:    env.AuthDelay,
		Location:     loc,
	}, cleanup, nil
}
