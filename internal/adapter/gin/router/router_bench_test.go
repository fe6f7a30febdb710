package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-management-api/internal/adapter/gin/handler"
	"user-management-api/internal/adapter/repository/memory"
	usecase "user-management-api/internal/usecase/user"
)

func setupBenchmarkRouter(b *testing.B, seed int) (*gin.Engine, []string) {
	b.Helper()
	gin.SetMode(gin.ReleaseMode)

	log := zap.NewNop()
	store := memory.NewUserStore(log)
	uc := usecase.New(store, log)
	r := SetupRouter(Options{AuthToken: testToken}, handler.NewUserHandler(uc, log), nil, log)

	ids := make([]string, 0, seed)
	for i := 0; i < seed; i++ {
		u, err := uc.CreateUser(b.Context(), usecase.CreateUserRequest{
			Name:  fmt.Sprintf("user-%d", i),
			Email: fmt.Sprintf("user-%d@example.com", i),
		})
		if err != nil {
			b.Fatal(err)
		}
		ids = append(ids, u.ID.String())
	}
	return r, ids
}

func benchRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func BenchmarkCreateUser(b *testing.B) {
	r, _ := setupBenchmarkRouter(b, 0)
	body, _ := json.Marshal(handler.UserRequest{Name: "Bench", Email: "bench@example.com"})

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, benchRequest(http.MethodPost, "/users", body))
			if w.Code != http.StatusCreated {
				b.Errorf("unexpected status %d", w.Code)
			}
		}
	})
}

func BenchmarkGetUser(b *testing.B) {
	r, ids := setupBenchmarkRouter(b, 1000)
	var n atomic.Int64

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			id := ids[int(n.Add(1))%len(ids)]
			w := httptest.NewRecorder()
			r.ServeHTTP(w, benchRequest(http.MethodGet, "/users/"+id, nil))
			if w.Code != http.StatusOK {
				b.Errorf("unexpected status %d", w.Code)
			}
		}
	})
}

func BenchmarkListUsers(b *testing.B) {
	r, _ := setupBenchmarkRouter(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, benchRequest(http.MethodGet, "/users?page=5&pageSize=50", nil))
			if w.Code != http.StatusOK {
				b.Errorf("unexpected status %d", w.Code)
			}
		}
	})
}
