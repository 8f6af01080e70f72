package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/binary-maze/api"
	apii "github.com/beka-birhanu/binary-maze/api/i"
	mazeapi "github.com/beka-birhanu/binary-maze/api/maze"
	"github.com/beka-birhanu/binary-maze/config"
	"github.com/beka-birhanu/binary-maze/service"
	"github.com/beka-birhanu/binary-maze/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	mazeGenerator  i.MazeGenerator
	mazeController apii.Controller
	router         *api.Router
	appLogger      general_i.Logger
)

func initMazeGenerator() {
	generatorLogger, err := logger.New("MAZE-GENERATOR", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze generator logger: %v", err))
		os.Exit(1)
	}

	mazeGenerator, err = service.NewMazeGenerator(&service.Config{Logger: generatorLogger})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze generator: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze generator initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeGenerator)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []apii.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func printMaze() {
	generated, err := mazeGenerator.Generate(config.Envs.MazeRows, config.Envs.MazeCols, config.Envs.MazeSeed)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}
	fmt.Print(generated.Grid.String())
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMazeGenerator()

	if !config.Envs.Serve {
		printMaze()
		return
	}

	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
