package logger

import "go.uber.org/zap"

// New builds the application logger. Raw database errors are logged here and
// never included in client responses.
func New() *zap.Logger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	log, err := config.Build()
	if err != nil {
		panic(err)
	}

	return log
}
