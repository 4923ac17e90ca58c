package main

import (
	"github.com/Akralan/NutriPlanner-sub000/config"
	"github.com/Akralan/NutriPlanner-sub000/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter(config.DB)
	r.Run(":8080")
}
