package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gestor-turnos/internal/models"
	"gestor-turnos/internal/repository"
	"gestor-turnos/pkg/fechas"
)

var (
	ErrSinUsuarios = errors.New("no se encontraron usuarios válidos")
	ErrSoloMensual = errors.New("este reporte solo está disponible por mes")
)

// DiasVacacionesAnuales is the yearly allowance the vacaciones report counts
// against.
const DiasVacacionesAnuales = 31

type ReporteService struct {
	usuarioRepo repository.UsuarioRepository
	rolRepo     repository.RolRepository
	turnoRepo   repository.TurnoRepository
	festivos    *FestivoService
}

func NewReporteService(
	usuarioRepo repository.UsuarioRepository,
	rolRepo repository.RolRepository,
	turnoRepo repository.TurnoRepository,
	festivos *FestivoService,
) *ReporteService {
	return &ReporteService{
		usuarioRepo: usuarioRepo,
		rolRepo:     rolRepo,
		turnoRepo:   turnoRepo,
		festivos:    festivos,
	}
}

func (s *ReporteService) YearsDisponibles() ([]int, error) {
	return s.turnoRepo.DistinctYears()
}

// rango expands the request to a half-open [desde, hasta) date range: the
// whole year, or the single month when one is given.
func rango(req models.ReporteRequest) (desde, hasta fechas.Fecha, err error) {
	if req.Month != nil {
		m := *req.Month
		if m < 1 || m > 12 {
			return desde, hasta, ErrMesInvalido
		}
		desde = fechas.Nueva(req.Year, time.Month(m), 1)
		hasta = fechas.Fecha{Time: desde.AddDate(0, 1, 0)}
		return desde, hasta, nil
	}
	desde = fechas.Nueva(req.Year, time.January, 1)
	hasta = fechas.Nueva(req.Year+1, time.January, 1)
	return desde, hasta, nil
}

type usuarioReporte struct {
	usuario models.Usuario
	rol     string
}

// poblacion is the report population: active shift-working users (Jefes de
// Turno and Operadores groups), optionally narrowed to one id. The label is
// the role's own name rather than a hardcoded id mapping.
func (s *ReporteService) poblacion(usuarioID *uint) ([]usuarioReporte, error) {
	roles, err := s.rolRepo.GetAll()
	if err != nil {
		return nil, err
	}
	rolesPorID := map[uint]*models.Rol{}
	for i := range roles {
		rolesPorID[roles[i].ID] = &roles[i]
	}

	usuarios, err := s.usuarioRepo.GetActivos()
	if err != nil {
		return nil, err
	}

	var poblacion []usuarioReporte
	for i := range usuarios {
		u := usuarios[i]
		if usuarioID != nil && u.ID != *usuarioID {
			continue
		}
		rol, ok := rolesPorID[u.RolID]
		if !ok {
			continue
		}
		grupo := rol.GrupoDisplay()
		if grupo != models.GrupoJefes && grupo != models.GrupoOperadores {
			continue
		}
		poblacion = append(poblacion, usuarioReporte{usuario: u, rol: rol.Nombre})
	}
	if len(poblacion) == 0 {
		return nil, ErrSinUsuarios
	}
	return poblacion, nil
}

func (s *ReporteService) Trabajados(req models.ReporteRequest) ([]models.ReporteTrabajado, error) {
	desde, hasta, err := rango(req)
	if err != nil {
		return nil, err
	}
	festivosSet := map[fechas.Fecha]bool{}
	if req.Month != nil {
		festivosSet, err = s.festivos.FechasActivasDelMes(req.Year, *req.Month)
		if err != nil {
			return nil, err
		}
	}
	poblacion, err := s.poblacion(req.UsuarioID)
	if err != nil {
		return nil, err
	}

	var reporte []models.ReporteTrabajado
	for _, ur := range poblacion {
		turnos, err := s.turnoRepo.GetByUsuarioRango(ur.usuario.ID, desde, hasta)
		if err != nil {
			return nil, err
		}

		horasRaw := 0
		diasUnicos := map[fechas.Fecha]bool{}
		festivosVisitados := map[fechas.Fecha]bool{}
		codigos := map[string]int{}
		detalle := map[string][]string{}
		for i := range turnos {
			t := turnos[i]
			if !t.EsContable() {
				continue
			}
			horasRaw += models.HorasCodigo(t.Turno)
			diasUnicos[t.Fecha] = true
			codigos[t.Turno]++
			clave := t.Fecha.String()
			detalle[clave] = append(detalle[clave], t.Turno)
			if req.Month != nil && festivosSet[t.Fecha] {
				festivosVisitados[t.Fecha] = true
			}
		}

		// Consolidated hours: per date, the max of its codes' hours, so an
		// accidental double assignment on one day does not double-count.
		horas := 0
		for _, cods := range detalle {
			maxDia := 0
			for _, c := range cods {
				if h := models.HorasCodigo(c); h > maxDia {
					maxDia = h
				}
			}
			horas += maxDia
		}

		totalDias := len(diasUnicos)
		numFestivos := len(festivosVisitados)
		reporte = append(reporte, models.ReporteTrabajado{
			UsuarioID:               ur.usuario.ID,
			Nombres:                 ur.usuario.Nombres,
			Apellidos:               ur.usuario.Apellidos,
			Rol:                     ur.rol,
			DiasTrabajados:          totalDias,
			DiasFestivos:            numFestivos,
			DiasTrabajadosNoFestivo: totalDias - numFestivos,
			HorasTrabajadas:         horas,
			HorasTrabajadasRaw:      horasRaw,
			TurnosCodigos:           codigos,
			DiasDetalle:             detalle,
		})
	}
	return reporte, nil
}

func (s *ReporteService) Turnos(req models.ReporteRequest) ([]models.ReporteTurnos, error) {
	desde, hasta, err := rango(req)
	if err != nil {
		return nil, err
	}
	poblacion, err := s.poblacion(req.UsuarioID)
	if err != nil {
		return nil, err
	}

	var reporte []models.ReporteTurnos
	for _, ur := range poblacion {
		turnos, err := s.turnoRepo.GetByUsuarioRango(ur.usuario.ID, desde, hasta)
		if err != nil {
			return nil, err
		}
		manana, tarde, noche, horas := 0, 0, 0, 0
		codigos := map[string]int{}
		for i := range turnos {
			t := turnos[i].Turno
			if !models.CodigoContable(t) {
				continue
			}
			horas += models.HorasCodigo(t)
			codigos[t]++
			switch t {
			case models.TurnoManana, models.TurnoMananaCasa, models.TurnoMananaOficina:
				manana++
			case models.TurnoTarde:
				tarde++
			case models.TurnoNoche, models.TurnoNocheCasa, models.TurnoNocheOficina:
				noche++
			}
		}
		reporte = append(reporte, models.ReporteTurnos{
			UsuarioID:       ur.usuario.ID,
			Nombres:         ur.usuario.Nombres,
			Apellidos:       ur.usuario.Apellidos,
			Rol:             ur.rol,
			Manana:          manana,
			Tarde:           tarde,
			Noche:           noche,
			Total:           manana + tarde + noche,
			HorasTrabajadas: horas,
			TurnosCodigos:   codigos,
		})
	}
	return reporte, nil
}

// Festivos is month-only. With a usuario it lists that user's worked-holiday
// dates; without one it returns a single synthetic "Todos los usuarios" row
// with a per-day detail of who worked which code.
func (s *ReporteService) Festivos(req models.ReporteRequest) ([]models.ReporteFestivos, error) {
	if req.Month == nil {
		return nil, ErrSoloMensual
	}
	desde, hasta, err := rango(req)
	if err != nil {
		return nil, err
	}
	festivosSet, err := s.festivos.FechasActivasDelMes(req.Year, *req.Month)
	if err != nil {
		return nil, err
	}
	poblacion, err := s.poblacion(req.UsuarioID)
	if err != nil {
		return nil, err
	}

	if req.UsuarioID != nil {
		var reporte []models.ReporteFestivos
		for _, ur := range poblacion {
			turnos, err := s.turnoRepo.GetByUsuarioRango(ur.usuario.ID, desde, hasta)
			if err != nil {
				return nil, err
			}
			var trabajados []fechas.Fecha
			for i := range turnos {
				if turnos[i].EsContable() && festivosSet[turnos[i].Fecha] {
					trabajados = append(trabajados, turnos[i].Fecha)
				}
			}
			sort.Slice(trabajados, func(i, j int) bool { return trabajados[i].Antes(trabajados[j]) })
			reporte = append(reporte, models.ReporteFestivos{
				UsuarioID:          ur.usuario.ID,
				Nombres:            ur.usuario.Nombres,
				Apellidos:          ur.usuario.Apellidos,
				Rol:                ur.rol,
				FestivosTrabajados: trabajados,
			})
		}
		return reporte, nil
	}

	porDia := map[int][]string{}
	fechasVistas := map[fechas.Fecha]bool{}
	for _, ur := range poblacion {
		turnos, err := s.turnoRepo.GetByUsuarioRango(ur.usuario.ID, desde, hasta)
		if err != nil {
			return nil, err
		}
		for i := range turnos {
			t := turnos[i]
			if !t.EsContable() || !festivosSet[t.Fecha] {
				continue
			}
			fechasVistas[t.Fecha] = true
			dia := t.Fecha.Day()
			porDia[dia] = append(porDia[dia], fmt.Sprintf("%s (%s)", ur.usuario.NombreCompleto(), t.Turno))
		}
	}
	var todas []fechas.Fecha
	for f := range fechasVistas {
		todas = append(todas, f)
	}
	sort.Slice(todas, func(i, j int) bool { return todas[i].Antes(todas[j]) })

	return []models.ReporteFestivos{{
		UsuarioID:          0,
		Nombres:            "Todos",
		Apellidos:          "los usuarios",
		Rol:                "Global",
		FestivosTrabajados: []fechas.Fecha{},
		FestivosDetalleDia: porDia,
		FestivosFechas:     todas,
	}}, nil
}

func (s *ReporteService) Vacaciones(req models.ReporteRequest) ([]models.ReporteVacaciones, error) {
	desde, hasta, err := rango(req)
	if err != nil {
		return nil, err
	}
	poblacion, err := s.poblacion(req.UsuarioID)
	if err != nil {
		return nil, err
	}

	var reporte []models.ReporteVacaciones
	for _, ur := range poblacion {
		vacaciones, err := s.turnoRepo.CountCodigo(ur.usuario.ID, desde, hasta, models.AusenciaVacaciones)
		if err != nil {
			return nil, err
		}

		cumpleTomado := false
		if cumple := ur.usuario.CumpleAnios; cumple != nil {
			dm := fechas.DiaMes{Dia: cumple.Day(), Mes: int(cumple.Month())}
			if dm.Materializable(req.Year) {
				fecha := dm.EnAnio(req.Year)
				if !fecha.Antes(desde) && fecha.Antes(hasta) {
					turnoCumple, err := s.turnoRepo.GetByUsuarioFecha(ur.usuario.ID, fecha)
					if err != nil {
						return nil, err
					}
					cumpleTomado = turnoCumple != nil && turnoCumple.Turno == models.AusenciaCumpleanos
				}
			}
		}

		usados := int(vacaciones)
		if cumpleTomado {
			usados++
		}
		restantes := DiasVacacionesAnuales - usados
		if restantes < 0 {
			restantes = 0
		}
		reporte = append(reporte, models.ReporteVacaciones{
			UsuarioID:         ur.usuario.ID,
			Nombres:           ur.usuario.Nombres,
			Apellidos:         ur.usuario.Apellidos,
			Rol:               ur.rol,
			VacacionesTomadas: int(vacaciones),
			CumpleanosTomado:  cumpleTomado,
			DiasRestantes:     restantes,
		})
	}
	return reporte, nil
}
