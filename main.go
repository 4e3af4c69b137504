package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/clasesya/clasesya-api/cron"
	"github.com/clasesya/clasesya-api/db"
	"github.com/clasesya/clasesya-api/redis"
	"github.com/clasesya/clasesya-api/routes"
)

func main() {
	app := fiber.New()
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ClasesYa API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupTeacherRoutes(app)
	routes.SetupSessionRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
