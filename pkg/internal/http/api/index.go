package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		jwt := api.Group("/jwt").Name("Auth API")
		{
			jwt.Post("/create", createTokenPair)
			jwt.Post("/refresh", refreshAccessToken)
			jwt.Post("/verify", verifyToken)
		}

		users := api.Group("/users").Name("Users API")
		{
			users.Post("/", createAccount)
			users.Get("/me", getMyself)
			users.Delete("/me", deleteMyself)
		}

		groups := api.Group("/groups").Name("Groups API")
		{
			groups.Get("/", listGroup)
			groups.Get("/:groupId", getGroup)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", listPost)
			posts.Get("/:postId", getPost)
			posts.Post("/", createPost)
			posts.Put("/:postId", editPost)
			posts.Patch("/:postId", editPost)
			posts.Delete("/:postId", deletePost)

			comments := posts.Group("/:postId/comments").Name("Comments API")
			{
				comments.Get("/", listComment)
				comments.Get("/:commentId", getComment)
				comments.Post("/", createComment)
				comments.Put("/:commentId", editComment)
				comments.Patch("/:commentId", editComment)
				comments.Delete("/:commentId", deleteComment)
			}
		}

		follow := api.Group("/follow").Name("Follow API")
		{
			follow.Get("/", listFollow)
			follow.Post("/", createFollow)
			follow.Delete("/:accountId", deleteFollow)
		}
	}
}
