package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	"github.com/ecclesia-hq/ecclesia_backend/internal/adapters/storage/snapshot"
	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/handlers"
	"github.com/ecclesia-hq/ecclesia_backend/internal/platform/config"
	"github.com/ecclesia-hq/ecclesia_backend/internal/utils"
)

var registerValidatorsOnce sync.Once

// registerBindingValidators mirrors the custom binding setup done in main.
func registerBindingValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
				_, err := time.Parse("2006-01-02", fl.Field().String())
				return err == nil
			})
		}
	})
}

type memPersister struct {
	snap *domain.Snapshot
}

func (p *memPersister) Load(_ context.Context) (*domain.Snapshot, error) {
	if p.snap == nil {
		return nil, apperrors.ErrNotFound
	}
	return p.snap, nil
}

func (p *memPersister) Save(_ context.Context, snap *domain.Snapshot) error {
	p.snap = snap
	return nil
}

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *snapshot.Store
	cfg    *config.Config
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerBindingValidators()

	s.cfg = &config.Config{
		IsProduction:      true,
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "ecclesia-test",
		FrontendBaseURL:   "http://localhost:3000",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.store = snapshot.New(context.Background(), &memPersister{}, logger)
	container := services.NewServiceContainer(s.cfg, s.store, nil)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, s.cfg, container, s.store)
}

func (s *RouterTestSuite) tokenFor(userID string) string {
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestMissingTokenRejected() {
	w := s.do(http.MethodGet, "/api/v1/churches/c1/units", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterTestSuite) TestTokenForUnknownUserRejected() {
	w := s.do(http.MethodGet, "/api/v1/churches/c1/units", s.tokenFor("ghost"), nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterTestSuite) TestPendingUserBlockedByGate() {
	w := s.do(http.MethodGet, "/api/v1/churches/c1/units", s.tokenFor("u5"), nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterTestSuite) TestSuspendedChurchMembersBlocked() {
	status := domain.ChurchSuspended
	s.store.UpdateChurch("c1", domain.ChurchUpdate{Status: &status})

	w := s.do(http.MethodGet, "/api/v1/churches/c1/units", s.tokenFor("u2"), nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterTestSuite) TestForeignChurchForbidden() {
	w := s.do(http.MethodGet, "/api/v1/churches/c2/units", s.tokenFor("u2"), nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterTestSuite) TestPlatformRoutesRequirePlatformOwner() {
	w := s.do(http.MethodGet, "/api/v1/platform/overview", s.tokenFor("u2"), nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/api/v1/platform/overview", s.tokenFor("u1"), nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestPlatformOwnerSuspendsAndActivates() {
	w := s.do(http.MethodPost, "/api/v1/platform/churches/c1/suspend", s.tokenFor("u1"), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(domain.ChurchSuspended, s.store.FindChurchByID("c1").Status)

	// The owner keeps working while the tenant is locked out.
	w = s.do(http.MethodGet, "/api/v1/churches/c1/units", s.tokenFor("u1"), nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/v1/platform/churches/c1/activate", s.tokenFor("u1"), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(domain.ChurchActive, s.store.FindChurchByID("c1").Status)
}

func (s *RouterTestSuite) TestUnitWritesAreAdminOnly() {
	body := map[string]any{"name": "Ushering"}

	w := s.do(http.MethodPost, "/api/v1/churches/c1/units", s.tokenFor("u4"), body)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/v1/churches/c1/units", s.tokenFor("u2"), body)
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Len(s.store.ListUnitsByChurch("c1"), 4)
}

func (s *RouterTestSuite) TestAnnouncementListIsFilteredByUnit() {
	outsider := s.store.RegisterUser(domain.User{
		ChurchID: "c1", FullName: "Choir Member", Email: "choir@grace.com",
		Role: domain.RoleWorker, UnitID: "un3", Status: domain.UserApproved,
	})

	// un1 member sees the global announcement and their unit's one.
	w := s.do(http.MethodGet, "/api/v1/churches/c1/announcements", s.tokenFor("u4"), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var forWorker []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &forWorker))
	s.Len(forWorker, 2)

	// A member of another unit only sees the global one.
	w = s.do(http.MethodGet, "/api/v1/churches/c1/announcements", s.tokenFor(outsider.ID), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var forOutsider []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &forOutsider))
	s.Len(forOutsider, 1)
}

func (s *RouterTestSuite) TestTaskListRestrictsUnitHeads() {
	otherHead := s.store.RegisterUser(domain.User{
		ChurchID: "c1", FullName: "Hosp Head", Email: "hosp@grace.com",
		Role: domain.RoleUnitHead, UnitID: "un2", Status: domain.UserApproved,
	})

	w := s.do(http.MethodGet, "/api/v1/churches/c1/tasks", s.tokenFor("u3"), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var forMediaHead []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &forMediaHead))
	s.Len(forMediaHead, 2)

	w = s.do(http.MethodGet, "/api/v1/churches/c1/tasks", s.tokenFor(otherHead.ID), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var forOtherHead []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &forOtherHead))
	s.Empty(forOtherHead)
}

func (s *RouterTestSuite) TestAccountingRequiresGrantedAccess() {
	w := s.do(http.MethodGet, "/api/v1/churches/c1/accounting/summary", s.tokenFor("u4"), nil)
	s.Equal(http.StatusForbidden, w.Code)

	s.store.ToggleAccountingAccess("u4")
	w = s.do(http.MethodGet, "/api/v1/churches/c1/accounting/summary", s.tokenFor("u4"), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var summary map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summary))
	s.Equal("USD", summary["currency"])
}

func (s *RouterTestSuite) TestRecordTransactionStampsSessionUser() {
	body := map[string]any{
		"type": "INCOME", "category": "Offering",
		"amount": "150.00", "date": "2024-06-02",
	}
	w := s.do(http.MethodPost, "/api/v1/churches/c1/accounting/transactions", s.tokenFor("u2"), body)
	s.Require().Equal(http.StatusCreated, w.Code)

	txs := s.store.ListTransactionsByChurch("c1")
	s.Require().Len(txs, 1)
	s.Equal("u2", txs[0].RecordedBy)
}

func (s *RouterTestSuite) TestAttendanceDateValidation() {
	bad := map[string]any{"date": "junk", "male": 10, "female": 10, "children": 5}
	w := s.do(http.MethodPost, "/api/v1/churches/c1/attendance", s.tokenFor("u2"), bad)
	s.Equal(http.StatusBadRequest, w.Code)

	good := map[string]any{"date": "2024-06-02", "male": 10, "female": 10, "children": 5}
	w = s.do(http.MethodPost, "/api/v1/churches/c1/attendance", s.tokenFor("u2"), good)
	s.Require().Equal(http.StatusCreated, w.Code)

	var created map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.EqualValues(25, created["total"])
}

func (s *RouterTestSuite) TestRegisterChurchAndLoginFlow() {
	register := map[string]any{
		"churchName": "Hope Assembly", "city": "Ibadan", "state": "Oyo",
		"country": "Nigeria", "fullName": "Pastor Femi",
		"email": "femi@hope.org", "password": "supersecret",
	}
	w := s.do(http.MethodPost, "/api/v1/auth/register", "", register)
	s.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		Token  string `json:"token"`
		Church *struct {
			ID string `json:"id"`
		} `json:"church"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Token)
	s.Require().NotNil(resp.Church)

	// The fresh token works against the new tenant right away.
	w = s.do(http.MethodGet, "/api/v1/churches/"+resp.Church.ID+"/units", resp.Token, nil)
	s.Equal(http.StatusOK, w.Code)

	login := map[string]any{"email": "femi@hope.org", "password": "supersecret"}
	w = s.do(http.MethodPost, "/api/v1/auth/login", "", login)
	s.Equal(http.StatusOK, w.Code)

	login["password"] = "wrongpassword"
	w = s.do(http.MethodPost, "/api/v1/auth/login", "", login)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterTestSuite) TestJoinChurchStaysPendingUntilApproved() {
	join := map[string]any{
		"churchId": "c1", "fullName": "Tola Ade",
		"email": "tola@grace.com", "password": "supersecret", "unitId": "un2",
	}
	w := s.do(http.MethodPost, "/api/v1/auth/join", "", join)
	s.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	// Pending accounts cannot log in.
	login := map[string]any{"email": "tola@grace.com", "password": "supersecret"}
	w = s.do(http.MethodPost, "/api/v1/auth/login", "", login)
	s.Equal(http.StatusForbidden, w.Code)

	// Church admin approves, then login succeeds.
	w = s.do(http.MethodPost, "/api/v1/churches/c1/users/"+created.ID+"/approve", s.tokenFor("u2"), nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/v1/auth/login", "", login)
	s.Equal(http.StatusOK, w.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
