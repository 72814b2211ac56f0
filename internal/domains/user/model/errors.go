package model

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserIsFollowed     = errors.New("user is followed by other users")
)

const (
	MsgUsernameTaken      = "Пользователь с таким именем уже существует."
	MsgInvalidUsername    = "Введите правильное имя пользователя. Оно может содержать только буквы, цифры и знаки @/./+/-/_."
	MsgReservedUsername   = "Это имя пользователя недоступно."
	MsgInvalidEmail       = "Введите правильный адрес электронной почты."
	MsgPasswordTooShort   = "Введённый пароль слишком короткий. Он должен содержать как минимум 8 символов."
	MsgPasswordMismatch   = "Введенные пароли не совпадают."
	MsgInvalidCredentials = "Пожалуйста, введите правильные имя пользователя и пароль. Оба поля могут быть чувствительны к регистру."
)
