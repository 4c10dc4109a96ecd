package connection

import (
	"regexp"

	"opsdesk/common"
	authcontroller "opsdesk/controller/auth"
	clientcontroller "opsdesk/controller/client"
	employeecontroller "opsdesk/controller/employee"
	reportcontroller "opsdesk/controller/report"
	taskcontroller "opsdesk/controller/task"
	"opsdesk/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var contactNumberPattern = regexp.MustCompile(`^\d{10}$`)

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("contact10", func(fl validator.FieldLevel) bool {
			return contactNumberPattern.MatchString(fl.Field().String())
		})
	}
}

func StartServer() {
	router := gin.Default()

	fb, authClient, err := FBConnection()
	if err != nil {
		common.Log.Fatalf("Failed to initialize Firebase clients: %v", err)
	}
	store := services.NewStore(fb)

	registerValidators()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	authcontroller.SignInController(router, store, authClient)
	authcontroller.SessionController(router, store)
	taskcontroller.TaskController(router, store)
	clientcontroller.ClientController(router, store)
	employeecontroller.EmployeeController(router, store, authClient)
	reportcontroller.ReportController(router, store)

	router.Run()
}
