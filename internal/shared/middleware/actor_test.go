package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-admin-backend/internal/domains/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	actor   *user.User
	err     error
	lookups []string
}

func (s *stubUserService) EnsureSeedActor(ctx context.Context, name, email string) (*user.User, error) {
	return s.actor, s.err
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*user.User, error) {
	s.lookups = append(s.lookups, id)
	if s.err != nil {
		return nil, s.err
	}
	return s.actor, nil
}

func TestActorResolverAttachesActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	users := &stubUserService{actor: &user.User{ID: "actor-1", Name: "Hortence"}}

	router := gin.New()
	router.Use(ActorResolver(users, "actor-1"))
	router.GET("/", func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, actor.Name)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hortence", rr.Body.String())
	assert.Equal(t, []string{"actor-1"}, users.lookups)
}

func TestActorResolverFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	users := &stubUserService{err: errors.New("connection refused")}

	router := gin.New()
	router.Use(ActorResolver(users, "actor-1"))
	router.GET("/", func(c *gin.Context) {
		_, ok := ActorFromContext(c)
		assert.False(t, ok)
		c.String(http.StatusOK, "served")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	// the request still reaches the handler
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "served", rr.Body.String())
}

func TestActorFromContextWithoutResolver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	actor, ok := ActorFromContext(c)
	assert.False(t, ok)
	assert.Nil(t, actor)
}
