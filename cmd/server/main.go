package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/stocktrail/stocktrail/auth"
	"github.com/stocktrail/stocktrail/internal/config"
	"github.com/stocktrail/stocktrail/inventory"
	invmongo "github.com/stocktrail/stocktrail/inventory/mongorepo"
	invmysql "github.com/stocktrail/stocktrail/inventory/mysqlrepo"
	"github.com/stocktrail/stocktrail/server"
	"github.com/stocktrail/stocktrail/sessions"
	usersmongo "github.com/stocktrail/stocktrail/users/mongorepo"
	usersmysql "github.com/stocktrail/stocktrail/users/mysqlrepo"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg := config.New()
	setupLogging(cfg)
	displayAppname(cfg.AppName)

	db, err := openMySQL(cfg)
	if err != nil {
		return errors.Wrap(err, "open mysql")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return errors.Wrap(err, "connect mongodb")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		return errors.Wrap(err, "ping mongodb")
	}
	mongoDB := mongoClient.Database(cfg.MongoDatabase)

	sessionRepo := sessions.NewInMemoryRepo()

	authService, err := auth.NewService(auth.Repos{
		Users:    usersmysql.New(db),
		Mirror:   usersmongo.New(mongoDB),
		Sessions: sessionRepo,
	})
	if err != nil {
		return errors.Wrap(err, "build auth service")
	}

	rowItems, err := inventory.NewService(invmysql.New(db), inventory.ReadScopeOwner)
	if err != nil {
		return errors.Wrap(err, "build row inventory service")
	}
	docItems, err := inventory.NewService(invmongo.New(mongoDB), inventory.ReadScopeRoleSplit)
	if err != nil {
		return errors.Wrap(err, "build document inventory service")
	}

	handler := server.New(server.Deps{
		Auth:     authService,
		Sessions: sessionRepo,
		Users:    usersmysql.New(db),
		RowItems: rowItems,
		DocItems: docItems,
	})

	httpServer := &http.Server{Addr: cfg.Port, Handler: handler}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func openMySQL(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.MySQLDSN())
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "db.Ping")
	}
	return db, nil
}

func setupLogging(cfg config.Config) {
	if cfg.Env == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
