package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"glg-capital.backend/internal/domain/entities"
	"glg-capital.backend/internal/infrastructure/datasources"
	"glg-capital.backend/internal/infrastructure/datasources/sqlite"
	"glg-capital.backend/internal/infrastructure/repositories"
	"glg-capital.backend/internal/interfaces/http/handlers"
	"glg-capital.backend/internal/interfaces/http/middleware"
	"glg-capital.backend/internal/usecases"
	"glg-capital.backend/pkg/jwt"
	"glg-capital.backend/pkg/ratelimit"
)

const (
	testUserHeader = "X-Test-User"
	testRoleHeader = "X-Test-Role"
)

var dbSeq int64

// codeOutbox records the verification codes the KYC flow sends.
type codeOutbox struct {
	mu    sync.Mutex
	codes map[string]string
}

func (o *codeOutbox) SendVerificationCode(_ context.Context, email, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.codes[email] = code
	return nil
}

func (o *codeOutbox) last(email string) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.codes[email]
}

type harness struct {
	db     *gorm.DB
	router *gin.Engine
	users  *repositories.UserRepository
	outbox *codeOutbox
	jwt    *jwt.JWTService
}

// asTestUser stands in for the auth middleware: the caller is taken from headers.
func asTestUser(c *gin.Context) {
	if id := c.GetHeader(testUserHeader); id != "" {
		c.Set(middleware.UserIDKey, id)
		c.Set(middleware.UserRoleKey, c.GetHeader(testRoleHeader))
	}
	c.Next()
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := sqlite.NewConnection(dsn, false)
	require.NoError(t, err)
	require.NoError(t, datasources.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	users := repositories.NewUserRepository(db)
	clients := repositories.NewClientRepository(db)
	records := repositories.NewKYCRecordRepository(db)
	forms := repositories.NewSimpleKYCRepository(db)
	investments := repositories.NewInvestmentRepository(db)
	uow := repositories.NewUnitOfWork(db)
	notifier := usecases.NewNotificationService(repositories.NewNotificationRepository(db))
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	outbox := &codeOutbox{codes: map[string]string{}}

	authHandler := handlers.NewAuthHandler(usecases.NewAuthUsecase(users, clients, uow, jwtService, nil, time.Hour))
	clientUsecase := usecases.NewClientUsecase(clients)
	clientHandler := handlers.NewClientHandler(clientUsecase)
	kycHandler := handlers.NewKYCHandler(usecases.NewKYCUsecase(records, forms, notifier, uow, ratelimit.NewMemory(3, time.Minute), outbox, 15*time.Minute))
	investmentHandler := handlers.NewInvestmentHandler(usecases.NewInvestmentUsecase(investments, notifier, uow))
	notificationHandler := handlers.NewNotificationHandler(notifier)
	adminHandler := handlers.NewAdminHandler(usecases.NewAdminUsecase(users, clients, records, forms, investments, notifier), clientUsecase)

	r := gin.New()
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/refresh", authHandler.RefreshToken)
	r.POST("/auth/logout", authHandler.Logout)

	api := r.Group("", asTestUser)
	api.GET("/auth/me", authHandler.GetMe)
	api.PUT("/auth/me", authHandler.UpdateMe)
	api.POST("/auth/change-password", authHandler.ChangePassword)
	api.GET("/me/client", clientHandler.GetMine)
	api.PUT("/me/client", clientHandler.SaveMine)
	api.POST("/kyc/simple", kycHandler.Submit)
	api.GET("/kyc/simple", kycHandler.GetMine)
	api.POST("/kyc/simple/:id/verify", kycHandler.VerifyEmail)
	api.POST("/kyc/simple/:id/resend", kycHandler.ResendCode)
	api.POST("/kyc/records", kycHandler.SubmitRecord)
	api.GET("/kyc/records", kycHandler.GetMyRecord)
	api.POST("/investments", investmentHandler.Create)
	api.GET("/investments", investmentHandler.ListMine)
	api.GET("/investments/:id", investmentHandler.GetMine)
	api.GET("/notifications", notificationHandler.List)
	api.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	api.PATCH("/notifications/:id/read", notificationHandler.MarkAsRead)
	api.POST("/notifications/read-all", notificationHandler.MarkAllAsRead)

	admin := api.Group("/admin")
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/clients", adminHandler.ListClients)
	admin.GET("/clients/:id", adminHandler.GetClient)
	admin.GET("/stats", adminHandler.Stats)
	admin.POST("/notifications", adminHandler.SendMessage)
	admin.GET("/kyc", kycHandler.ListRecords)
	admin.PATCH("/kyc/:id/status", kycHandler.ReviewRecord)
	admin.GET("/simple-kyc", kycHandler.ListForms)
	admin.GET("/simple-kyc/:id", kycHandler.GetForm)
	admin.PATCH("/simple-kyc/:id/review", kycHandler.ReviewForm)
	admin.GET("/investments", investmentHandler.List)
	admin.PATCH("/investments/:id/status", investmentHandler.UpdateStatus)
	admin.PATCH("/investments/:id", investmentHandler.Update)
	admin.DELETE("/investments/:id", investmentHandler.Delete)

	return &harness{db: db, router: r, users: users, outbox: outbox, jwt: jwtService}
}

func (h *harness) createUser(t *testing.T, email string, role entities.UserRole) *entities.User {
	t.Helper()
	u, err := h.users.Create(context.Background(), &entities.CreateUserInput{Email: email, Password: "password123", Role: role})
	require.NoError(t, err)
	return u
}

// do sends body as JSON on behalf of userID (empty for anonymous) and decodes the reply.
func (h *harness) do(t *testing.T, method, path string, body interface{}, userID string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	return h.doAs(t, method, path, body, userID, string(entities.UserRoleUser))
}

func (h *harness) doAs(t *testing.T, method, path string, body interface{}, userID, role string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(testUserHeader, userID)
		req.Header.Set(testRoleHeader, role)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	out := map[string]interface{}{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func items(t *testing.T, body map[string]interface{}) []interface{} {
	t.Helper()
	list, ok := body["items"].([]interface{})
	require.True(t, ok, "items missing in %v", body)
	return list
}
