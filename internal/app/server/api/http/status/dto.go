package status

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Message string `json:"message" example:"Taskpad API server is running" doc:"Service status line"`
	Version string `json:"version" example:"1.0.0"`
}
