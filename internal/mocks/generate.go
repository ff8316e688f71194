package mocks

//go:generate mockery --name InvoiceStore --srcpkg github.com/fakturo-lab/fakturo/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ClientStore --srcpkg github.com/fakturo-lab/fakturo/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name FolderStore --srcpkg github.com/fakturo-lab/fakturo/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
