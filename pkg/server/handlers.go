package server

import (
	"seecooker/handler"
)

type Handlers struct {
	User   *handler.User
	Recipe *handler.Recipe
	Post   *handler.Post
}
