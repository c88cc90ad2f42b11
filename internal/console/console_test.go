package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElyRami/Loterias/internal/logger"
	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/services"
	"github.com/ElyRami/Loterias/internal/testutil"
)

func init() {
	logger.Init("test")
}

type session struct {
	lotteries services.LotteryServicer
	sales     services.SaleServicer
}

func newSession(t *testing.T) *session {
	t.Helper()

	ctx := context.Background()
	lotteries := services.NewLotteryService(&testutil.MemoryStore[models.Lottery]{})
	require.NoError(t, lotteries.Load(ctx))
	sales := services.NewSaleService(&testutil.MemoryStore[models.Sale]{}, lotteries)
	require.NoError(t, sales.Load(ctx))

	return &session{lotteries: lotteries, sales: sales}
}

// run feeds input to a fresh console and returns everything it printed.
func (s *session) run(t *testing.T, input string) string {
	t.Helper()

	var out bytes.Buffer
	c := New(s.lotteries, s.sales, strings.NewReader(input), &out)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestRunExits(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "7\n")
	assert.Contains(t, out, "Menú Principal")
	assert.Contains(t, out, "¡Hasta luego!")
}

func TestRunStopsOnEndOfInput(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "")
	assert.NotContains(t, out, "¡Hasta luego!")

	// Input ending in the middle of a prompt is not an error either.
	out = s.run(t, "2\nLotería Nueva\n")
	assert.Contains(t, out, "Ingrese número de fracciones por billete")
}

func TestRunRejectsUnknownOption(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "9\n7\n")
	assert.Contains(t, out, "Opción no válida")
}

func TestListLotteriesShowsTotals(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "3\n7\n")
	assert.Contains(t, out, "Nombre: Lotería de Bogotá")
	assert.Contains(t, out, "Nombre: Lotería del Huila")
	assert.Contains(t, out, "Total billetes: 800")
	assert.Contains(t, out, "Total valor inventario inicial: $9.800.000")
}

func TestAddLottery(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "2\nLotería Nueva\n10\nmucho\n25000\n500\n7\n")
	assert.Contains(t, out, "Por favor ingrese un valor numérico válido")
	assert.Contains(t, out, "¡Lotería agregada exitosamente!")
	assert.Contains(t, out, "ID: 9")
	assert.Contains(t, out, "Cantidad de billetes: 50")
	assert.Contains(t, out, "Valor inventario inicial: $12.500.000")

	l, err := s.lotteries.FindLotteryByName("nueva")
	require.NoError(t, err)
	assert.Equal(t, uint(9), l.ID)
}

func TestAddLotteryReportsValidationErrors(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "2\nSin Precio\n3\n0\n300\n7\n")
	assert.Contains(t, out, "No se pudo agregar la lotería")
	assert.Len(t, s.lotteries.ListLotteries(), 8)
}

func TestModifyLottery(t *testing.T) {
	s := newSession(t)

	t.Run("price", func(t *testing.T) {
		out := s.run(t, "1\n1\n1\n20000\n7\n")
		assert.Contains(t, out, "¡Valor actualizado exitosamente!")
		assert.Contains(t, out, "Valor por fracción: $20.000")
	})

	t.Run("inventory_reprompts_for_a_valid_index", func(t *testing.T) {
		out := s.run(t, "1\n42\n2\n2\n600\n7\n")
		assert.Contains(t, out, "Por favor ingrese un número válido de lotería")
		assert.Contains(t, out, "¡Cantidad actualizada exitosamente!")

		l, err := s.lotteries.GetLotteryByID(2)
		require.NoError(t, err)
		assert.Equal(t, 600, l.InitialInventory)
		assert.Equal(t, 200, l.TicketsEquivalent)
	})
}

func TestSearchLottery(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "4\nMEDELLIN\n7\n")
	assert.Contains(t, out, "Información de la lotería encontrada")
	assert.Contains(t, out, "Nombre: Lotería de Medellín")

	out = s.run(t, "4\nLotería de París\n7\n")
	assert.Contains(t, out, "Lotería no encontrada.")
}

func TestSalesMenu(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "5\n1\n1\n3\nAna Pérez\nLuis Gómez\n4\n7\n7\n")
	assert.Contains(t, out, "¡Venta registrada exitosamente!")
	assert.Contains(t, out, "Cliente: Ana Pérez")
	assert.Contains(t, out, "Total de ventas: $15.000")

	sales := s.sales.ListSales()
	require.Len(t, sales, 1)
	assert.Equal(t, uint(1), sales[0].LotteryID)
	assert.Equal(t, "15000", sales[0].Value.String())

	out = s.run(t, "5\n3\n5\n7\n7\n")
	assert.Contains(t, out, "Lotería de Bogotá: 1 venta(s), $15.000")
	assert.Contains(t, out, "Cantidad de ventas: 1")
	assert.Contains(t, out, "Promedio por venta: $15.000")

	out = s.run(t, "5\n6\n99\n6\n1\n7\n7\n")
	assert.Contains(t, out, "Venta no encontrada.")
	assert.Contains(t, out, "¡Venta eliminada exitosamente!")
	assert.Empty(t, s.sales.ListSales())
}

func TestRegisterSaleRejectsUnknownLottery(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "5\n1\n99\n1\nAna\nLuis\n7\n7\n")
	assert.Contains(t, out, "Error al registrar la venta")
	assert.Empty(t, s.sales.ListSales())
}

func TestReload(t *testing.T) {
	s := newSession(t)

	out := s.run(t, "6\n7\n")
	assert.Contains(t, out, "Datos recargados: 8 loterías, 0 ventas.")
}
