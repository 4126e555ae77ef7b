package testutil

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
	logsvc "github.com/trezcool/gradebook/services/logger"
	inmemkv "github.com/trezcool/gradebook/storage/kv/inmem"
	rosterstore "github.com/trezcool/gradebook/storage/roster"
)

// Subjects is the subject list used by tests.
var Subjects = []string{"Mathematics", "Science", "History", "English", "Art"}

// NewLogger returns a logger recording every entry at debug level and above.
func NewLogger() (core.Logger, *observer.ObservedLogs) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	return logsvc.NewZapLogger(zap.New(obsCore)), logs
}

// NewStore returns an empty in-memory store, prefilled with the given key/values.
func NewStore(t *testing.T, kvs ...string) *inmemkv.Store {
	if len(kvs)%2 != 0 {
		t.Fatalf("NewStore() needs key/value pairs, got %d args", len(kvs))
	}
	store := inmemkv.Open()
	for i := 0; i < len(kvs); i += 2 {
		if err := store.Set(context.Background(), kvs[i], kvs[i+1]); err != nil {
			t.Fatalf("NewStore() failed: %v", err)
		}
	}
	return store
}

// NewService returns an initialized student service persisting into store.
func NewService(t *testing.T, store core.KVStore) (*student.Service, *observer.ObservedLogs) {
	logger, logs := NewLogger()
	repo := rosterstore.NewRepository(store, core.StorageConfig{}, logger)
	svc := student.NewService(repo, Subjects, logger)
	svc.Init(context.Background())
	return svc, logs
}

// Scores builds a score list in Subjects order.
func Scores(values ...float64) []student.SubjectScore {
	scores := make([]student.SubjectScore, len(values))
	for i, v := range values {
		scores[i] = student.SubjectScore{Subject: Subjects[i%len(Subjects)], Score: v}
	}
	return scores
}

// AddStudent adds a student through the service and fails the test on error.
func AddStudent(t *testing.T, svc *student.Service, name string, scores ...float64) student.Student {
	st, err := svc.Add(context.Background(), student.NewStudent{Name: name, Scores: Scores(scores...)})
	if err != nil {
		t.Fatalf("AddStudent() failed: %v", err)
	}
	return st
}
