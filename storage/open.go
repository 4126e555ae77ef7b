package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/storage/kv/badgerkv"
	inmemkv "github.com/trezcool/gradebook/storage/kv/inmem"
	"github.com/trezcool/gradebook/storage/kv/rediskv"
)

// Drivers
const (
	DriverMemory = "memory"
	DriverBadger = "badger"
	DriverRedis  = "redis"
)

// Open returns the key-value store selected by conf.Storage.Driver.
func Open(ctx context.Context, conf *core.Config) (core.KVStore, error) {
	switch conf.Storage.Driver {
	case DriverMemory:
		return inmemkv.Open(), nil
	case DriverBadger, "":
		store, err := badgerkv.Open(conf.Storage.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverRedis:
		store, err := rediskv.Open(ctx, conf.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
