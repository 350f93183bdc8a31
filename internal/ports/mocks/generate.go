//go:generate mockgen -source=../order_repository.go     -destination=./mock_order_repository.go     -package=mocks
//go:generate mockgen -source=../menu_repository.go      -destination=./mock_menu_repository.go      -package=mocks
//go:generate mockgen -source=../inventory_repository.go -destination=./mock_inventory_repository.go -package=mocks
//go:generate mockgen -source=../account_repository.go   -destination=./mock_account_repository.go   -package=mocks
//go:generate mockgen -source=../report_repository.go    -destination=./mock_report_repository.go    -package=mocks
//go:generate mockgen -source=../catalog_cache.go        -destination=./mock_catalog_cache.go        -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks

package mocks
