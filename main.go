package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/andyguzmaneth/ethcr-planner-sub000/handlers"
	"github.com/andyguzmaneth/ethcr-planner-sub000/logging"
	"github.com/andyguzmaneth/ethcr-planner-sub000/services"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store/filestore"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store/mongostore"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store/sqlitestore"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func openStore() (store.Store, error) {
	switch os.Getenv("STORE_DRIVER") {
	case "", "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "planner.db"
		}
		return sqlitestore.Open(path)
	case "file":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		return filestore.Open(dir)
	case "mongo":
		return mongostore.Open(os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB_NAME"))
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", os.Getenv("STORE_DRIVER"))
	}
}

func main() {
	logging.InitLogger()

	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Planner Service...")
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_ERROR, Description: Error loading .env file: %v", err)
	}

	st, err := openStore()
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Store initialization failed: %v", err)
	}
	defer st.Close()
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Store ready (driver: %s).", os.Getenv("STORE_DRIVER"))

	httpClient := utils.NewHTTPClient()
	notifier := services.NewNotificationService(os.Getenv("NOTIFY_URL"), httpClient)

	userService := services.NewUserService(st)
	projectService := services.NewProjectService(st)
	areaService := services.NewAreaService(st)
	taskService := services.NewTaskService(st, notifier)
	meetingService := services.NewMeetingService(st, notifier)
	templateService := services.NewTemplateService(st, projectService, taskService, userService)

	authHandler := handlers.NewAuthHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, areaService, taskService, meetingService)
	areaHandler := handlers.NewAreaHandler(areaService)
	taskHandler := handlers.NewTaskHandler(taskService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	templateHandler := handlers.NewTemplateHandler(templateService)

	r := handlers.NewRouter(authHandler, projectHandler, areaHandler, taskHandler, meetingHandler, templateHandler)
	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
