package devserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"userdeck/internal/domain"
	"userdeck/internal/userapi"
)

const (
	// BasePath prefixes every API route.
	BasePath = "/data/v1"

	defaultLimit = 20
	minLimit     = 5
	maxLimit     = 50
)

// Options configure a Server. Empty AppIDs accepts any non-empty app-id;
// empty AllowedOrigins allows every origin.
type Options struct {
	AppIDs         []string
	AllowedOrigins []string
	Logger         *slog.Logger
	Now            func() time.Time
}

// Server serves the user API over a Store.
type Server struct {
	store   Store
	appIDs  map[string]struct{}
	origins []string
	log     *slog.Logger
	now     func() time.Time
}

func New(store Store, opts Options) *Server {
	s := &Server{
		store:   store,
		appIDs:  make(map[string]struct{}, len(opts.AppIDs)),
		origins: opts.AllowedOrigins,
		log:     opts.Logger,
		now:     opts.Now,
	}
	for _, id := range opts.AppIDs {
		if id = strings.TrimSpace(id); id != "" {
			s.appIDs[id] = struct{}{}
		}
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if len(s.origins) == 0 {
		s.origins = []string{"*"}
	}
	useJSONFieldNames()
	return s
}

// Handler builds the gin router.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(s.accessLog(), gin.CustomRecovery(s.recover))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  s.origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", userapi.AppIDHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, domain.CodePathNotFound, nil)
	})

	api := r.Group(BasePath, s.requireAppID)
	api.GET("/user", s.listUsers)
	api.GET("/user/:id", s.getUser)
	api.POST("/user/create", s.createUser)
	api.PUT("/user/:id", s.updateUser)
	api.DELETE("/user/:id", s.deleteUser)
	return r
}

func (s *Server) requireAppID(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(userapi.AppIDHeader))
	if id == "" {
		writeError(c, http.StatusForbidden, domain.CodeAppIDMissing, nil)
		return
	}
	if len(s.appIDs) > 0 {
		if _, ok := s.appIDs[id]; !ok {
			s.log.Warn("unknown app-id", "app_id", id, "path", c.Request.URL.Path)
			writeError(c, http.StatusForbidden, domain.CodeAppIDNotExist, nil)
			return
		}
	}
	c.Next()
}

func (s *Server) listUsers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		writeError(c, http.StatusBadRequest, domain.CodeParamsNotValid, nil)
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < minLimit || limit > maxLimit {
		writeError(c, http.StatusBadRequest, domain.CodeParamsNotValid, nil)
		return
	}

	users, total, err := s.store.List(c.Request.Context(), page*limit, limit)
	if err != nil {
		s.serverError(c, "list users", err)
		return
	}
	data := make([]domain.UserPreviewDTO, 0, len(users))
	for _, u := range users {
		data = append(data, u.preview())
	}
	c.JSON(http.StatusOK, domain.ListResponseDTO{Data: data, Total: total, Page: page, Limit: limit})
}

func (s *Server) getUser(c *gin.Context) {
	u, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u.full())
}

type createRequest struct {
	Title       string              `json:"title" binding:"omitempty,oneof=mr ms mrs miss dr"`
	FirstName   string              `json:"firstName" binding:"required,min=2,max=50"`
	LastName    string              `json:"lastName" binding:"required,min=2,max=50"`
	Gender      string              `json:"gender" binding:"omitempty,oneof=male female other"`
	Email       string              `json:"email" binding:"required,email"`
	DateOfBirth string              `json:"dateOfBirth"`
	Phone       string              `json:"phone"`
	Picture     string              `json:"picture"`
	Location    *domain.LocationDTO `json:"location"`
}

func (s *Server) createUser(c *gin.Context) {
	var req createRequest
	if !bind(c, &req) {
		return
	}
	dob, ok := normalizeDate(req.DateOfBirth)
	if !ok {
		writeError(c, http.StatusBadRequest, domain.CodeBodyNotValid, map[string]string{"dateOfBirth": invalidDate(req.DateOfBirth)})
		return
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	u, err := s.store.Create(c.Request.Context(), User{
		ID:           NewID(),
		Title:        req.Title,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Picture:      req.Picture,
		Gender:       req.Gender,
		Email:        req.Email,
		DateOfBirth:  dob,
		Phone:        req.Phone,
		Location:     req.Location,
		RegisterDate: now,
		UpdatedDate:  now,
	})
	if errors.Is(err, ErrEmailTaken) {
		writeError(c, http.StatusBadRequest, domain.CodeBodyNotValid, map[string]string{"email": "Email already used"})
		return
	}
	if err != nil {
		s.serverError(c, "create user", err)
		return
	}
	s.log.Info("user created", "id", u.ID)
	c.JSON(http.StatusOK, u.full())
}

type updateRequest struct {
	Title       string              `json:"title" binding:"omitempty,oneof=mr ms mrs miss dr"`
	FirstName   string              `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName    string              `json:"lastName" binding:"omitempty,min=2,max=50"`
	Gender      string              `json:"gender" binding:"omitempty,oneof=male female other"`
	Email       *string             `json:"email"`
	DateOfBirth string              `json:"dateOfBirth"`
	Phone       string              `json:"phone"`
	Picture     string              `json:"picture"`
	Location    *domain.LocationDTO `json:"location"`
}

func (s *Server) updateUser(c *gin.Context) {
	u, ok := s.lookup(c)
	if !ok {
		return
	}
	var req updateRequest
	if !bind(c, &req) {
		return
	}
	if req.Email != nil && *req.Email != u.Email {
		writeError(c, http.StatusBadRequest, domain.CodeBodyNotValid, map[string]string{"email": "Path `email` cannot be updated."})
		return
	}
	dob, ok := normalizeDate(req.DateOfBirth)
	if !ok {
		writeError(c, http.StatusBadRequest, domain.CodeBodyNotValid, map[string]string{"dateOfBirth": invalidDate(req.DateOfBirth)})
		return
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&u.Title, req.Title)
	set(&u.FirstName, req.FirstName)
	set(&u.LastName, req.LastName)
	set(&u.Gender, req.Gender)
	set(&u.DateOfBirth, dob)
	set(&u.Phone, req.Phone)
	set(&u.Picture, req.Picture)
	if req.Location != nil {
		u.Location = req.Location
	}
	u.UpdatedDate = s.now().UTC().Truncate(time.Millisecond)

	u, err := s.store.Update(c.Request.Context(), u)
	if errors.Is(err, ErrNotFound) {
		writeError(c, http.StatusNotFound, domain.CodeResourceNotFound, nil)
		return
	}
	if err != nil {
		s.serverError(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, u.full())
}

func (s *Server) deleteUser(c *gin.Context) {
	id := c.Param("id")
	if !validID(id) {
		writeError(c, http.StatusBadRequest, domain.CodeParamsNotValid, nil)
		return
	}
	err := s.store.Delete(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeError(c, http.StatusNotFound, domain.CodeResourceNotFound, nil)
		return
	}
	if err != nil {
		s.serverError(c, "delete user", err)
		return
	}
	s.log.Info("user deleted", "id", id)
	c.JSON(http.StatusOK, domain.DeleteResponseDTO{ID: id})
}

// lookup loads the record named by the :id parameter, writing the error
// response itself when that fails.
func (s *Server) lookup(c *gin.Context) (User, bool) {
	id := c.Param("id")
	if !validID(id) {
		writeError(c, http.StatusBadRequest, domain.CodeParamsNotValid, nil)
		return User{}, false
	}
	u, err := s.store.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeError(c, http.StatusNotFound, domain.CodeResourceNotFound, nil)
		return User{}, false
	}
	if err != nil {
		s.serverError(c, "get user", err)
		return User{}, false
	}
	return u, true
}

func bind(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	data, _ := fieldErrors(err)
	writeError(c, http.StatusBadRequest, domain.CodeBodyNotValid, data)
	return false
}

func invalidDate(v string) string {
	return "Cast to Date failed for value \"" + v + "\" at path \"dateOfBirth\""
}

func (s *Server) serverError(c *gin.Context, op string, err error) {
	s.log.Error(op+" failed", "err", err)
	writeError(c, http.StatusInternalServerError, domain.CodeServerError, nil)
}

func (s *Server) recover(c *gin.Context, recovered any) {
	s.log.Error("panic in handler", "path", c.Request.URL.Path, "panic", recovered)
	writeError(c, http.StatusInternalServerError, domain.CodeServerError, nil)
}

func writeError(c *gin.Context, status int, code domain.ErrorCode, data map[string]string) {
	c.AbortWithStatusJSON(status, domain.ErrorEnvelopeDTO{Error: string(code), Data: data})
}

// accessLog records method, path, remote, status, bytes and duration for
// each request.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"remote", c.ClientIP(),
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start),
		)
	}
}
