package main

import (
    "github.com/RicardoOchGeorges/Friskly-riktiga/config"
    "github.com/RicardoOchGeorges/Friskly-riktiga/routes"
    "github.com/RicardoOchGeorges/Friskly-riktiga/utils"
)

func main() {
    config.InitDB()
    utils.InitS3()
    r := routes.SetupRouter()
    r.Run(":8080")
}
