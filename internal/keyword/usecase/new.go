package usecase

import "listener-srv/internal/keyword"

type implUseCase struct{}

var _ keyword.UseCase = implUseCase{}

func New() keyword.UseCase {
	return implUseCase{}
}
