package service

import (
	"errors"
	"fmt"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/repository"
	"gestor-turnos/pkg/fechas"

	"github.com/sirupsen/logrus"
)

var (
	ErrMesInvalido      = errors.New("mes fuera de rango (1-12)")
	ErrCodigoInvalido   = errors.New("código de turno inválido")
	ErrTipoAusencia     = errors.New("tipo de ausencia debe ser 'v', 'b' o 'c'")
	ErrRangoInvertido   = errors.New("la fecha fin no puede ser anterior a la fecha inicio")
	ErrAusenciaSolapada = errors.New("ya existe una ausencia que solapa con el rango")
)

type TurnoService struct {
	turnoRepo    repository.TurnoRepository
	usuarioRepo  repository.UsuarioRepository
	ausenciaRepo repository.AusenciaRepository
	logger       *logrus.Logger
}

func NewTurnoService(
	turnoRepo repository.TurnoRepository,
	usuarioRepo repository.UsuarioRepository,
	ausenciaRepo repository.AusenciaRepository,
) *TurnoService {
	return &TurnoService{
		turnoRepo:    turnoRepo,
		usuarioRepo:  usuarioRepo,
		ausenciaRepo: ausenciaRepo,
		logger:       logrus.New(),
	}
}

// TurnosDelMes lists the month's assignments. Month is one-based, as on the
// wire.
func (s *TurnoService) TurnosDelMes(year, month int) ([]models.Turno, error) {
	if month < 1 || month > 12 {
		return nil, ErrMesInvalido
	}
	return s.turnoRepo.GetByMonth(year, month)
}

// Asignar upserts one shift assignment, enforcing the closed code set. The
// backend owns the (usuario, fecha) uniqueness invariant.
func (s *TurnoService) Asignar(usuarioID uint, fecha fechas.Fecha, codigo string, esReten bool) (*models.Turno, error) {
	if !models.CodigoTurnoValido(codigo) && !models.CodigoAusenciaValido(codigo) {
		return nil, fmt.Errorf("%w: %q", ErrCodigoInvalido, codigo)
	}
	if _, err := s.usuarioRepo.GetByID(usuarioID); err != nil {
		return nil, err
	}
	turno := &models.Turno{
		UsuarioID: usuarioID,
		Fecha:     fecha,
		Turno:     codigo,
		EsReten:   esReten,
		Estado:    models.EstadoActivo,
	}
	if err := s.turnoRepo.Upsert(turno); err != nil {
		return nil, err
	}
	return turno, nil
}

// AsignarCumpleanosMes upserts a birthday ('c') entry for every active user
// whose birthday falls in the one-based month. Cells an operator already
// touched are left alone.
func (s *TurnoService) AsignarCumpleanosMes(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, ErrMesInvalido
	}
	usuarios, err := s.usuarioRepo.GetActivos()
	if err != nil {
		return 0, err
	}

	asignados := 0
	for i := range usuarios {
		u := &usuarios[i]
		if !u.CumpleEnMes(month) {
			continue
		}
		dm := fechas.DiaMes{Dia: u.CumpleAnios.Day(), Mes: month}
		if !dm.Materializable(year) {
			continue
		}
		fecha := dm.EnAnio(year)

		existente, err := s.turnoRepo.GetByUsuarioFecha(u.ID, fecha)
		if err != nil {
			return asignados, err
		}
		if existente != nil && existente.ModificadoManual {
			continue
		}
		turno := &models.Turno{
			UsuarioID:          u.ID,
			Fecha:              fecha,
			Turno:              models.AusenciaCumpleanos,
			GeneradoAutomatico: true,
			Estado:             models.EstadoActivo,
		}
		if err := s.turnoRepo.Upsert(turno); err != nil {
			return asignados, err
		}
		asignados++
	}
	if asignados > 0 {
		s.logger.Infof("Cumpleaños auto-asignados para %d/%d: %d", month, year, asignados)
	}
	return asignados, nil
}

// AsignarAusenciaRango stores the absence record and writes one
// absence-coded cell per date of the inclusive range, so the grid and the
// reports see the same thing.
func (s *TurnoService) AsignarAusenciaRango(usuarioID uint, inicio, fin fechas.Fecha, tipo, descripcion string) (*models.Ausencia, error) {
	if !models.CodigoAusenciaValido(tipo) {
		return nil, fmt.Errorf("%w: %q", ErrTipoAusencia, tipo)
	}
	if fin.Antes(inicio) {
		return nil, ErrRangoInvertido
	}
	if _, err := s.usuarioRepo.GetByID(usuarioID); err != nil {
		return nil, err
	}
	solapadas, err := s.ausenciaRepo.GetByUsuarioRango(usuarioID, inicio, fin)
	if err != nil {
		return nil, err
	}
	if len(solapadas) > 0 {
		return nil, fmt.Errorf("%w: %s a %s", ErrAusenciaSolapada,
			solapadas[0].FechaInicio.Format(fechas.Layout), solapadas[0].FechaFin.Format(fechas.Layout))
	}

	ausencia := &models.Ausencia{
		UsuarioID:   usuarioID,
		FechaInicio: inicio,
		FechaFin:    fin,
		Tipo:        tipo,
		Descripcion: descripcion,
	}
	if err := s.ausenciaRepo.Create(ausencia); err != nil {
		return nil, err
	}

	for _, fecha := range fechas.RangoInclusivo(inicio, fin) {
		turno := &models.Turno{
			UsuarioID: usuarioID,
			Fecha:     fecha,
			Turno:     tipo,
			Estado:    models.EstadoActivo,
		}
		if err := s.turnoRepo.Upsert(turno); err != nil {
			return nil, fmt.Errorf("ausencia %d: turno del %s: %w", ausencia.ID, fecha.Format(fechas.Layout), err)
		}
	}
	s.logger.Infof("Ausencia '%s' registrada para usuario %d del %s al %s",
		tipo, usuarioID, inicio.Format(fechas.Layout), fin.Format(fechas.Layout))
	return ausencia, nil
}

// AusenciasDeUsuario lists the user's absence records, newest first.
func (s *TurnoService) AusenciasDeUsuario(usuarioID uint) ([]models.Ausencia, error) {
	if _, err := s.usuarioRepo.GetByID(usuarioID); err != nil {
		return nil, err
	}
	return s.ausenciaRepo.GetByUsuario(usuarioID)
}
