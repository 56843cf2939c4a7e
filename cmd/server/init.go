package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jokerslbmusica-svg/jokerswebpage/config"
	bandmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/band/models"
	commentmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/comment/models"
	gallerymodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/gallery/models"
	musicmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/models"
	tourmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/tour/models"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/database"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/utility"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase (auth + storage)
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.TourDates = "tour_dates"
	global.MongoDB_ColNames.Songs = "songs"
	global.MongoDB_ColNames.FanComments = "fan_comments"
	global.MongoDB_ColNames.MediaItems = "media_items"
	global.MongoDB_ColNames.BandInfo = "band_info"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, media_type, comment_status)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các index cho các collection theo tag `index` trong model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.TourDates), tourmodels.TourDate{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Songs), musicmodels.Song{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.FanComments), commentmodels.FanComment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.MediaItems), gallerymodels.MediaItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.BandInfo), bandmodels.Biography{})
}

// initFirebase khởi tạo Firebase Admin SDK.
// Không fatal khi thiếu config: server vẫn chạy được cho các route public,
// các route admin sẽ trả 503 cho đến khi Firebase được cấu hình.
func initFirebase() {
	cfg := global.ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	app, err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, cfg.FirebaseStorageBucket)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}

	global.FirebaseApp = app
	global.FirebaseAuth = utility.GetFirebaseAuth()
	logrus.Info("Firebase initialized successfully")
}
