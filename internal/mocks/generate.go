package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Opener --dir ../domain/team --output domain/team --outpkg teammock --filename opener_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Session --dir ../domain/team --output domain/team --outpkg teammock --filename session_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Generator --dir ../platform/id --output platform/id --outpkg idmock --filename generator_mock.go
