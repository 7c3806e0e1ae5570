// Package roster caches personnel and roles for the dashboard views. The
// order of the first successful fetch is sticky: refetches are re-projected
// onto it so a backend reordering never reshuffles rows the operator is
// looking at.
package roster

import (
	"context"
	"sync"

	"gestor-turnos/internal/client"
	"gestor-turnos/internal/models"

	"github.com/sirupsen/logrus"
)

type Store struct {
	api *client.Client

	mu       sync.Mutex
	orden    []uint       // ids in first-seen order
	posicion map[uint]int // id -> index into orden
	usuarios []models.Usuario
	roles    []models.Rol
	errMsg   string
	cargando bool

	logger *logrus.Logger
}

func NewStore(api *client.Client) *Store {
	return &Store{
		api:      api,
		posicion: map[uint]int{},
		logger:   logrus.New(),
	}
}

// Refetch loads personnel and roles concurrently. A failure on either list
// records an error message and leaves the previous data in place.
func (s *Store) Refetch(ctx context.Context) {
	s.mu.Lock()
	s.cargando = true
	s.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)

	var errUsuarios, errRoles error

	go func() {
		defer wg.Done()
		usuarios, err := s.api.Usuarios(ctx)
		if err != nil {
			errUsuarios = err
			return
		}
		s.mu.Lock()
		s.usuarios = s.proyectar(usuarios)
		s.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		roles, err := s.api.Roles(ctx)
		if err != nil {
			errRoles = err
			return
		}
		s.mu.Lock()
		s.roles = roles
		s.mu.Unlock()
	}()

	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case errUsuarios != nil:
		s.logger.WithError(errUsuarios).Warn("error al cargar usuarios")
		s.errMsg = "Error al cargar usuarios: " + errUsuarios.Error()
	case errRoles != nil:
		s.logger.WithError(errRoles).Warn("error al cargar roles")
		s.errMsg = "Error al cargar roles: " + errRoles.Error()
	default:
		s.errMsg = ""
	}
	s.cargando = false
}

// proyectar reorders the fetched list onto the sticky ordering index,
// appending and registering ids seen for the first time. Caller holds mu.
func (s *Store) proyectar(nuevos []models.Usuario) []models.Usuario {
	porID := make(map[uint]models.Usuario, len(nuevos))
	for _, u := range nuevos {
		porID[u.ID] = u
	}

	ordenados := make([]models.Usuario, 0, len(nuevos))
	for _, id := range s.orden {
		if u, ok := porID[id]; ok {
			ordenados = append(ordenados, u)
		}
	}
	for _, u := range nuevos {
		if _, visto := s.posicion[u.ID]; !visto {
			s.posicion[u.ID] = len(s.orden)
			s.orden = append(s.orden, u.ID)
			ordenados = append(ordenados, u)
		}
	}
	return ordenados
}

func (s *Store) Usuarios() []models.Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Usuario, len(s.usuarios))
	copy(out, s.usuarios)
	return out
}

func (s *Store) Roles() []models.Rol {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Rol, len(s.roles))
	copy(out, s.roles)
	return out
}

func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store) Cargando() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cargando
}

func (s *Store) rolPorID(id uint) *models.Rol {
	for i := range s.roles {
		if s.roles[i].ID == id {
			return &s.roles[i]
		}
	}
	return nil
}

// Grupo is a display bucket of active users sharing a role group.
type Grupo struct {
	Nombre   string
	Usuarios []models.Usuario
}

// Agrupar buckets active users by role group in the fixed display order,
// preserving sticky ordering inside each bucket. Empty groups are omitted.
func (s *Store) Agrupar() []Grupo {
	s.mu.Lock()
	defer s.mu.Unlock()

	porGrupo := map[string][]models.Usuario{}
	for _, u := range s.usuarios {
		if !u.EsActivo() {
			continue
		}
		nombre := models.GrupoOtros
		if rol := s.rolPorID(u.RolID); rol != nil {
			nombre = rol.GrupoDisplay()
		}
		porGrupo[nombre] = append(porGrupo[nombre], u)
	}

	var grupos []Grupo
	for _, nombre := range models.GruposOrdenados {
		if usuarios := porGrupo[nombre]; len(usuarios) > 0 {
			grupos = append(grupos, Grupo{Nombre: nombre, Usuarios: usuarios})
		}
	}
	return grupos
}
