package usecase

import (
	"github.com/3-lines-studio/toolpages/internal/adapters/fs"
)

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintDone(msg string, args ...any)
}

type FileSystem = fs.FileSystem
