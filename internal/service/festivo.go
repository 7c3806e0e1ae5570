package service

import (
	"errors"
	"fmt"
	"sort"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/repository"
	"gestor-turnos/pkg/fechas"

	"github.com/sirupsen/logrus"
)

var (
	ErrFestivoDuplicado = errors.New("ya existe un festivo en esta fecha y tipo")
	ErrTipoFestivo      = errors.New("tipo debe ser 'Nacional' o 'Regional'")
	ErrFormatoDiaMes    = errors.New("la fecha debe tener el formato DD/MM")
	ErrFechaInexistente = errors.New("el día no existe en ese mes")
)

// Leap reference year: a DD/MM pair that does not materialize here (30/02,
// 31/04, ...) does not exist in any year. 29/02 does, so leap-day holidays
// stay allowed.
const anioReferencia = 2024

type FestivoService struct {
	festivoRepo repository.FestivoRepository
	logger      *logrus.Logger
}

func NewFestivoService(festivoRepo repository.FestivoRepository) *FestivoService {
	return &FestivoService{festivoRepo: festivoRepo, logger: logrus.New()}
}

// Listar returns every holiday sorted by the month*100+day key.
func (s *FestivoService) Listar() ([]models.Festivo, error) {
	festivos, err := s.festivoRepo.GetAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(festivos, func(i, j int) bool {
		return festivos[i].Par().Clave() < festivos[j].Par().Clave()
	})
	return festivos, nil
}

func (s *FestivoService) validarDiaMes(diaMes string) (fechas.DiaMes, error) {
	dm, err := fechas.ParseDiaMes(diaMes)
	if err != nil {
		return fechas.DiaMes{}, fmt.Errorf("%w: %q", ErrFormatoDiaMes, diaMes)
	}
	if !dm.Materializable(anioReferencia) {
		return fechas.DiaMes{}, fmt.Errorf("%w: %s", ErrFechaInexistente, diaMes)
	}
	return dm, nil
}

func (s *FestivoService) Crear(festivo *models.Festivo) error {
	if _, err := s.validarDiaMes(festivo.DiaMes); err != nil {
		return err
	}
	if !models.TipoFestivoValido(festivo.Tipo) {
		return fmt.Errorf("%w: %q", ErrTipoFestivo, festivo.Tipo)
	}
	duplicado, err := s.festivoRepo.ExisteDuplicado(festivo.DiaMes, festivo.Tipo)
	if err != nil {
		return err
	}
	if duplicado {
		return ErrFestivoDuplicado
	}
	if festivo.Estado == "" {
		festivo.Estado = models.EstadoActivo
	}
	if err := s.festivoRepo.Create(festivo); err != nil {
		return err
	}
	s.logger.Infof("Festivo %s (%s) creado", festivo.DiaMes, festivo.Tipo)
	return nil
}

// ActualizacionFestivo carries a partial update; the single-field estado
// toggle flows through here too.
type ActualizacionFestivo struct {
	DiaMes      *string `json:"dia_mes"`
	Descripcion *string `json:"descripcion"`
	Tipo        *string `json:"tipo"`
	Estado      *string `json:"estado"`
}

func (s *FestivoService) ActualizarParcial(id uint, cambios ActualizacionFestivo) (*models.Festivo, error) {
	festivo, err := s.festivoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cambios.DiaMes != nil {
		if _, err := s.validarDiaMes(*cambios.DiaMes); err != nil {
			return nil, err
		}
		festivo.DiaMes = *cambios.DiaMes
	}
	if cambios.Descripcion != nil {
		festivo.Descripcion = *cambios.Descripcion
	}
	if cambios.Tipo != nil {
		if !models.TipoFestivoValido(*cambios.Tipo) {
			return nil, fmt.Errorf("%w: %q", ErrTipoFestivo, *cambios.Tipo)
		}
		festivo.Tipo = *cambios.Tipo
	}
	if cambios.Estado != nil {
		if *cambios.Estado != models.EstadoActivo && *cambios.Estado != models.EstadoInactivo {
			return nil, ErrEstadoInvalido
		}
		festivo.Estado = *cambios.Estado
	}
	if err := s.festivoRepo.Save(festivo); err != nil {
		return nil, err
	}
	return festivo, nil
}

// FechasActivasDelMes materializes the active holidays that land in the
// given one-based month of year. The day/month match is year-independent.
func (s *FestivoService) FechasActivasDelMes(year, month int) (map[fechas.Fecha]bool, error) {
	activos, err := s.festivoRepo.GetActivos()
	if err != nil {
		return nil, err
	}
	set := map[fechas.Fecha]bool{}
	for i := range activos {
		dm := activos[i].Par()
		if dm.Mes != month || !dm.Materializable(year) {
			continue
		}
		set[dm.EnAnio(year)] = true
	}
	return set, nil
}
