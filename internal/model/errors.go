package model

import "errors"

var (
	ErrAuthenticationRequired = errors.New("пользователь не авторизован")
	ErrValidation             = errors.New("некорректные данные")
	ErrNotFound               = errors.New("не найден")
	ErrStoreFailure           = errors.New("ошибка хранилища")
	ErrPartialFailure         = errors.New("операция выполнена частично")
)
