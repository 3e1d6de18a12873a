package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Reader --dir ../domain/team --output domain/team --outpkg teammock --filename reader_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Reader --dir ../domain/player --output domain/player --outpkg playermock --filename reader_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Reader --dir ../domain/game --output domain/game --outpkg gamemock --filename reader_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Reader --dir ../domain/standing --output domain/standing --outpkg standingmock --filename reader_mock.go
