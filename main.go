package main

import (
	"time"

	"restaurante-api/config"
	"restaurante-api/controllers"
	"restaurante-api/middleware"
	"restaurante-api/models"
	"restaurante-api/repository"
	"restaurante-api/services"

	"github.com/gofiber/fiber/v2"
	"github.com/op/go-logging"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var log = logging.MustGetLogger("main")

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := config.InitLogger(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Info("Running database migrations...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Weekday{},
		&models.Menu{},
		&models.MenuItem{},
		&models.Order{},
		&models.Client{},
		&models.Meal{},
		&models.Rating{},
		&models.FoodRating{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}
	log.Info("Database migration complete.")

	seedAdmin(db)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	weekdayRepo := repository.NewWeekdayRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Event publishing
	var events services.IEventService
	if cfg.Kafka.Enabled {
		events, err = services.NewKafkaEventService(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Fatalf("Failed to initialize Kafka producer: %v", err)
		}
	} else {
		events = services.NewNoopEventService()
	}

	// Services
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMin) * time.Minute
	userSvc := services.NewUserService(userRepo, cfg.Auth.Secret, tokenTTL)
	foodSvc := services.NewFoodService(foodRepo)
	weekdaySvc := services.NewWeekdayService(weekdayRepo)
	menuSvc := services.NewMenuService(menuRepo, weekdayRepo, foodRepo, cfg.Menu.DefaultCapacity)
	orderSvc := services.NewOrderService(orderRepo, foodRepo, events)
	ratingSvc := services.NewRatingService(ratingRepo, orderRepo)

	// Controllers
	userCtrl := controllers.NewUserController(userSvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	weekdayCtrl := controllers.NewWeekdayController(weekdaySvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	ratingCtrl := controllers.NewRatingController(ratingSvc)

	auth := middleware.NewAuthMiddleware(userSvc)

	app := fiber.New()
	setupRoutes(app, auth, userCtrl, foodCtrl, weekdayCtrl, menuCtrl, orderCtrl, ratingCtrl)

	addr := ":" + cfg.Server.Port
	log.Infof("Server is starting on %s", addr)
	log.Fatal(app.Listen(addr))
}

func setupRoutes(
	app *fiber.App,
	auth *middleware.AuthMiddleware,
	userCtrl *controllers.UserController,
	foodCtrl *controllers.FoodController,
	weekdayCtrl *controllers.WeekdayController,
	menuCtrl *controllers.MenuController,
	orderCtrl *controllers.OrderController,
	ratingCtrl *controllers.RatingController,
) {
	app.Get("/home", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Home page! Welcome to ESHT restaurante API!"})
	})

	// Users
	app.Post("/user", userCtrl.Login)
	app.Post("/user/register", userCtrl.Register)
	app.Get("/user/list", auth.RequireAuth, auth.RequireAdmin, userCtrl.List)
	app.Put("/user/update", auth.RequireAuth, userCtrl.Update)

	// Food catalog
	app.Get("/food", foodCtrl.List)
	app.Get("/food/:id", foodCtrl.Get)
	app.Post("/food/create", auth.RequireAuth, auth.RequireAdmin, foodCtrl.Create)
	app.Put("/food/:id/update", auth.RequireAuth, auth.RequireAdmin, foodCtrl.Update)
	app.Delete("/food/:id/delete", auth.RequireAuth, auth.RequireAdmin, foodCtrl.Delete)

	// Schedule
	app.Get("/horario", weekdayCtrl.List)
	app.Get("/horario/:type_day", weekdayCtrl.Get)
	app.Post("/horario/create", auth.RequireAuth, auth.RequireAdmin, weekdayCtrl.Create)
	app.Put("/horario/:type_day/update", auth.RequireAuth, auth.RequireAdmin, weekdayCtrl.Update)

	// Menus
	app.Get("/menu/:type_day", menuCtrl.ListByDay)
	app.Get("/menu/:type_day/:menu_type", menuCtrl.Get)
	app.Post("/menu/:type_day/create", auth.RequireAuth, auth.RequireAdmin, menuCtrl.Create)
	app.Post("/menu/:menu_id/createMenuItem", auth.RequireAuth, auth.RequireAdmin, menuCtrl.SetItems)
	app.Put("/menu/:type_day/:menu_type/updateMenuItemAfterOrder", auth.RequireAuth, menuCtrl.ApplyOrder)

	// Orders
	app.Post("/order/create", auth.RequireAuth, orderCtrl.Create)
	app.Get("/order/user", auth.RequireAuth, orderCtrl.ListMine)
	app.Get("/order/orderid/:id", auth.RequireAuth, orderCtrl.Get)
	app.Put("/order/orderid/:id", auth.RequireAuth, auth.RequireAdmin, orderCtrl.Update)
	app.Delete("/order/:id", auth.RequireAuth, auth.RequireAdmin, orderCtrl.Delete)

	// Ratings
	app.Get("/avaliacao/list", auth.RequireAuth, auth.RequireAdmin, ratingCtrl.List)
	app.Get("/avaliacao/MyList", auth.RequireAuth, ratingCtrl.ListMine)
	app.Get("/avaliacao/:id", auth.RequireAuth, ratingCtrl.Get)
	app.Post("/avaliacao/:order_id", auth.RequireAuth, ratingCtrl.Create)
	app.Delete("/avaliacao/:id", auth.RequireAuth, ratingCtrl.Delete)
}

// seedAdmin creates the default admin account when none exists, so a fresh
// deployment can be managed immediately.
func seedAdmin(db *gorm.DB) {
	var admin models.User
	if db.Where("role = ?", models.RoleAdmin).First(&admin).RowsAffected > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("Failed to hash admin password: %v", err)
		return
	}
	admin = models.User{
		Name:     "admin",
		Email:    "admin@restaurante.local",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Errorf("Failed to seed admin user: %v", err)
		return
	}
	log.Info("Seeded default admin user")
}
