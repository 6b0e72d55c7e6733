package app

import (
	"log"

	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/nats"
	"yatube/internal/paginator"
	"yatube/internal/publisher"
	"yatube/internal/repository"
	"yatube/internal/service"
)

// App wires the database, the event publisher and the services. The
// returned cleanup closes the NATS connection.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, func()) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	p, err := paginator.New(cfg.PostsPerPage)
	if err != nil {
		log.Fatalf("Неверная настройка пагинации: %v", err)
	}

	eventPublisher, cleanup := newPublisher(cfg.NATS)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, p, eventPublisher)

	return db, repo, services, cleanup
}

// newPublisher connects to NATS when it is configured. Without it post
// events are dropped.
func newPublisher(cfg config.NATS) (service.EventPublisher, func()) {
	if cfg.URL == "" {
		log.Println("NATS_URL не задан, события постов не публикуются")
		return publisher.Noop{}, func() {}
	}

	client, err := nats.NewClient(nats.Config{
		URL:           cfg.URL,
		Name:          cfg.ClientName,
		MaxReconnects: cfg.MaxReconnects,
		ReconnectWait: cfg.ReconnectWait,
	})
	if err != nil {
		log.Fatalf("Не удалось подключиться к NATS: %v", err)
	}

	log.Printf("Подключено к NATS: %s", cfg.URL)
	return publisher.NewEventPublisher(client), client.Close
}
