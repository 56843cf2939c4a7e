package global

import (
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jokerslbmusica-svg/jokerswebpage/config"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	TourDates   string // Tên collection cho lịch diễn
	Songs       string // Tên collection cho bài hát
	FanComments string // Tên collection cho bình luận của fan
	MediaItems  string // Tên collection cho gallery (band + fan)
	BandInfo    string // Tên collection cho thông tin ban nhạc (biography singleton)
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                     // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Firebase
var FirebaseApp *firebase.App // Firebase app (auth + storage)
var FirebaseAuth *auth.Client // Firebase auth client, dùng để verify ID token

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
