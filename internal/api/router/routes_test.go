package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"github.com/jokerslbmusica-svg/jokerswebpage/internal/api/middleware"
)

// stubCRUDHandler trả về 200 cho mọi operation, dùng để kiểm tra việc đăng ký route
type stubCRUDHandler struct{}

func (stubCRUDHandler) InsertOne(c fiber.Ctx) error          { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) InsertMany(c fiber.Ctx) error         { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) Find(c fiber.Ctx) error               { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) FindOne(c fiber.Ctx) error            { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) FindOneById(c fiber.Ctx) error        { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) FindManyByIds(c fiber.Ctx) error      { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) FindWithPagination(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) UpdateOne(c fiber.Ctx) error          { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) UpdateById(c fiber.Ctx) error         { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) DeleteOne(c fiber.Ctx) error          { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) DeleteMany(c fiber.Ctx) error         { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) DeleteById(c fiber.Ctx) error         { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) CountDocuments(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) Distinct(c fiber.Ctx) error           { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) Upsert(c fiber.Ctx) error             { return c.SendStatus(fiber.StatusOK) }
func (stubCRUDHandler) DocumentExists(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }

func doRequest(t *testing.T, app *fiber.App, method string, path string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

// Route đọc public phải trả 200 không cần token, route ghi phải trả 401
func TestRegisterCRUDRoutesPublicReadWithoutToken(t *testing.T) {
	app := fiber.New()
	r := NewRouter(app)
	v1 := app.Group("/api/v1")

	r.RegisterCRUDRoutes(v1, "/tour/dates", stubCRUDHandler{}, ReadWriteConfig)

	// Đọc public: không có Authorization vẫn phải qua được
	assert.Equal(t, http.StatusOK, doRequest(t, app, "GET", "/api/v1/tour/dates/find"))
	assert.Equal(t, http.StatusOK, doRequest(t, app, "GET", "/api/v1/tour/dates/find-one"))
	assert.Equal(t, http.StatusOK, doRequest(t, app, "GET", "/api/v1/tour/dates/count"))

	// Ghi luôn yêu cầu đăng nhập
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, app, "POST", "/api/v1/tour/dates/insert-one"))
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, app, "PUT", "/api/v1/tour/dates/update-one"))
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, app, "DELETE", "/api/v1/tour/dates/delete-by-id/abc"))
}

// Route public đăng ký sau route authed cùng prefix không được dính auth middleware
func TestRegisterRouteWithMiddlewareDoesNotLeakAcrossPrefix(t *testing.T) {
	app := fiber.New()
	v1 := app.Group("/api/v1")
	publicHandler := func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	// Thứ tự như comment router: các route delete authed đăng ký trước submit public
	authMiddleware := middleware.AuthMiddleware()
	RegisterRouteWithMiddleware(v1, "/comments", "DELETE", "/delete-one", []fiber.Handler{authMiddleware}, publicHandler)
	RegisterRouteWithMiddleware(v1, "/comments", "DELETE", "/delete-many", []fiber.Handler{authMiddleware}, publicHandler)
	RegisterRouteWithMiddleware(v1, "/comments", "POST", "/submit", nil, publicHandler)
	RegisterRouteWithMiddleware(v1, "/comments", "POST", "/list-page", nil, publicHandler)
	RegisterRouteWithMiddleware(v1, "/comments", "POST", "/approve/:id", []fiber.Handler{authMiddleware}, publicHandler)

	assert.Equal(t, http.StatusOK, doRequest(t, app, "POST", "/api/v1/comments/submit"))
	assert.Equal(t, http.StatusOK, doRequest(t, app, "POST", "/api/v1/comments/list-page"))

	assert.Equal(t, http.StatusUnauthorized, doRequest(t, app, "DELETE", "/api/v1/comments/delete-one"))
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, app, "POST", "/api/v1/comments/approve/abc"))
}
