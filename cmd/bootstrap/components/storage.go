package components

import (
	"context"
	"fmt"

	"gearshare/internal/infra/db"
	"gearshare/internal/infra/memstore"
	"gearshare/internal/infra/postgres"
	"gearshare/internal/pkg/config"
	"gearshare/internal/usecase"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStores,
	),
)

// Stores bundles every store interface so the backend can be chosen in
// one place.
type Stores struct {
	fx.Out

	Users    usecase.UserStore
	Items    usecase.ItemStore
	Bookings usecase.BookingStore
	Comments usecase.CommentStore
	Requests usecase.RequestStore
}

// NewStores selects the storage backend from config. The database pool
// is only opened for the postgres backend.
func NewStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	switch cfg.Storage.Backend {
	case "memory":
		root := memstore.New()
		return Stores{
			Users:    memstore.NewUserStore(root),
			Items:    memstore.NewItemStore(root),
			Bookings: memstore.NewBookingStore(root),
			Comments: memstore.NewCommentStore(root),
			Requests: memstore.NewRequestStore(root),
		}, nil

	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return Stores{
			Users:    postgres.NewUserStore(pool),
			Items:    postgres.NewItemStore(pool),
			Bookings: postgres.NewBookingStore(pool),
			Comments: postgres.NewCommentStore(pool),
			Requests: postgres.NewRequestStore(pool),
		}, nil

	default:
		return Stores{}, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}
