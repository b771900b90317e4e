// Package tenant resuelve la empresa activa de un usuario y centraliza la caché de listados.
package tenant

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/application/ports"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

// Scope agrupa el almacén, la caché y el logger que comparten los casos de uso por empresa.
type Scope struct {
	Store repository.Store
	Cache ports.ListCache
	Log   *logger.Logger
}

// NewScope construye el Scope. cache nil = sin caché.
func NewScope(store repository.Store, cache ports.ListCache, log *logger.Logger) *Scope {
	if cache == nil {
		cache = noCache{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Scope{Store: store, Cache: cache, Log: log}
}

// SelectedCompany devuelve la empresa activa del usuario o domain.ErrCompanyNotFound.
func (s *Scope) SelectedCompany(ctx context.Context, userID string) (*entity.Company, error) {
	company, err := s.Store.Companies().GetSelected(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

// OwnedCompanies lista las empresas del usuario; domain.ErrCompaniesNotFound si no tiene ninguna.
func (s *Scope) OwnedCompanies(ctx context.Context, userID string) ([]*entity.Company, error) {
	list, err := s.Store.Companies().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrCompaniesNotFound
	}
	return list, nil
}

// CompanyByName resuelve una empresa del usuario por nombre (imports).
func (s *Scope) CompanyByName(ctx context.Context, userID, name string) (*entity.Company, error) {
	company, err := s.Store.Companies().GetByUserAndName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

// Invalidate borra la caché del par (usuario, empresa). Los errores solo se registran.
func (s *Scope) Invalidate(ctx context.Context, userID, companyID string) {
	if err := s.Cache.Invalidate(ctx, userID, companyID); err != nil {
		s.Log.Warn().Err(err).Str("user_id", userID).Str("company_id", companyID).Msg("no se pudo invalidar la caché")
	}
}

// InvalidateCompany invalida la caché del dueño de la empresa (escrituras por id sin token).
func (s *Scope) InvalidateCompany(ctx context.Context, companyID string) {
	company, err := s.Store.Companies().GetByID(ctx, companyID)
	if err != nil || company == nil {
		return
	}
	s.Invalidate(ctx, company.UserID, companyID)
}

// ReadThrough devuelve el valor cacheado en key o lo carga y lo guarda.
func ReadThrough[T any](ctx context.Context, s *Scope, key string, load func() (T, error)) (T, error) {
	var cached T
	hit, err := s.Cache.Get(ctx, key, &cached)
	if err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
	}
	if hit {
		return cached, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	if err := s.Cache.Set(ctx, key, v); err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("escritura de caché fallida")
	}
	return v, nil
}

type noCache struct{}

func (noCache) Get(context.Context, string, any) (bool, error)   { return false, nil }
func (noCache) Set(context.Context, string, any) error            { return nil }
func (noCache) Invalidate(context.Context, string, string) error { return nil }
