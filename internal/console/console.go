// Package console implements the interactive operator menu over the catalog
// and ledger services.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/ElyRami/Loterias/internal/errors"
	"github.com/ElyRami/Loterias/internal/models"
	"github.com/ElyRami/Loterias/internal/services"
	"github.com/ElyRami/Loterias/internal/textutil"
)

// errInputClosed unwinds the menus when the input stream ends.
var errInputClosed = errors.New("input closed")

const rule = "=================================================="

// Console reads commands from in and writes to out.
type Console struct {
	lotteries services.LotteryServicer
	sales     services.SaleServicer
	in        *bufio.Scanner
	out       io.Writer
}

// New creates a Console.
func New(lotteries services.LotteryServicer, sales services.SaleServicer, in io.Reader, out io.Writer) *Console {
	return &Console{
		lotteries: lotteries,
		sales:     sales,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run shows the main menu until the operator exits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("\n=== Menú Principal ===")
		c.println("1. Modificar lotería existente")
		c.println("2. Agregar nueva lotería")
		c.println("3. Ver todas las loterías")
		c.println("4. Buscar lotería")
		c.println("5. Ventas")
		c.println("6. Recargar datos")
		c.println("7. Salir")

		choice, err := c.prompt("\nSeleccione una opción (1-7): ")
		if err != nil {
			return c.closed(err)
		}

		switch choice {
		case "1":
			err = c.modifyLottery(ctx)
		case "2":
			err = c.addLottery(ctx)
		case "3":
			c.listLotteries()
		case "4":
			err = c.searchLottery()
		case "5":
			err = c.salesMenu(ctx)
		case "6":
			err = c.reload(ctx)
		case "7":
			c.println("¡Hasta luego!")
			return nil
		default:
			c.println("Opción no válida. Por favor intente de nuevo.")
		}
		if err != nil {
			return c.closed(err)
		}
	}
}

func (c *Console) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func (c *Console) modifyLottery(ctx context.Context) error {
	lotteries := c.lotteries.ListLotteries()
	if len(lotteries) == 0 {
		c.println("No hay loterías registradas.")
		return nil
	}

	c.println("\nLoterías disponibles:")
	for i, l := range lotteries {
		c.printf("%d. %s\n", i+1, l.Name)
	}

	var selected models.Lottery
	for {
		n, err := c.promptInt("\nIngrese el número de la lotería que desea modificar: ")
		if err != nil {
			return err
		}
		if n >= 1 && n <= len(lotteries) {
			selected = lotteries[n-1]
			break
		}
		c.println("Por favor ingrese un número válido de lotería")
	}

	c.println("\n¿Qué desea modificar?")
	c.println("1. Valor por fracción")
	c.println("2. Cantidad de inventario")
	choice, err := c.prompt("Seleccione una opción (1-2): ")
	if err != nil {
		return err
	}

	var updated *models.Lottery
	switch choice {
	case "1":
		price, err := c.promptDecimal("Ingrese el nuevo valor por fracción: ")
		if err != nil {
			return err
		}
		updated, err = c.lotteries.UpdatePrice(ctx, selected.ID, price)
		if err != nil {
			c.printf("No se pudo actualizar el valor: %s\n", err)
			return nil
		}
		c.println("¡Valor actualizado exitosamente!")
	case "2":
		inventory, err := c.promptInt("Ingrese la nueva cantidad de inventario por fracción: ")
		if err != nil {
			return err
		}
		updated, err = c.lotteries.UpdateInventory(ctx, selected.ID, inventory)
		if err != nil {
			c.printf("No se pudo actualizar la cantidad: %s\n", err)
			return nil
		}
		c.println("¡Cantidad actualizada exitosamente!")
	default:
		c.println("Opción no válida.")
		return nil
	}

	c.showLottery(*updated)
	return nil
}

func (c *Console) addLottery(ctx context.Context) error {
	c.println("\n=== Agregar Nueva Lotería ===")
	name, err := c.prompt("Ingrese el nombre de la lotería: ")
	if err != nil {
		return err
	}
	fractions, err := c.promptInt("Ingrese número de fracciones por billete: ")
	if err != nil {
		return err
	}
	price, err := c.promptDecimal("Ingrese valor por fracción: ")
	if err != nil {
		return err
	}
	inventory, err := c.promptInt("Ingrese cantidad de inventario por fracción: ")
	if err != nil {
		return err
	}

	lottery, err := c.lotteries.CreateLottery(ctx, name, fractions, price, inventory)
	if err != nil {
		c.printf("No se pudo agregar la lotería: %s\n", err)
		return nil
	}

	c.println("\n¡Lotería agregada exitosamente!")
	c.showLottery(*lottery)
	return nil
}

func (c *Console) listLotteries() {
	c.println("\nListado de todas las loterías:")
	for _, l := range c.lotteries.ListLotteries() {
		c.println("\n" + rule)
		c.showLottery(l)
	}

	totals := c.lotteries.Totals()
	c.println("\n" + rule)
	c.println("TOTALES GENERALES:")
	c.printf("Total billetes: %d\n", totals.Tickets)
	c.printf("Total valor inventario inicial: %s\n", textutil.FormatCurrency(totals.InventoryValue))
}

func (c *Console) searchLottery() error {
	query, err := c.prompt("Ingrese el nombre de la lotería a buscar: ")
	if err != nil {
		return err
	}

	lottery, err := c.lotteries.FindLotteryByName(query)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.println("Lotería no encontrada.")
		} else {
			c.printf("Búsqueda no válida: %s\n", err)
		}
		return nil
	}

	c.println("\nInformación de la lotería encontrada:")
	c.showLottery(*lottery)
	return nil
}

func (c *Console) reload(ctx context.Context) error {
	if err := c.lotteries.Reload(ctx); err != nil {
		return err
	}
	if err := c.sales.Load(ctx); err != nil {
		return err
	}
	c.printf("Datos recargados: %d loterías, %d ventas.\n", len(c.lotteries.ListLotteries()), len(c.sales.ListSales()))
	return nil
}

func (c *Console) salesMenu(ctx context.Context) error {
	for {
		c.println("\n=== Ventas ===")
		c.println("1. Registrar nueva venta")
		c.println("2. Ver todas las ventas")
		c.println("3. Ver ventas por lotería")
		c.println("4. Ver total de ventas")
		c.println("5. Ver estadísticas")
		c.println("6. Eliminar venta")
		c.println("7. Volver al menú principal")

		choice, err := c.prompt("\nSeleccione una opción (1-7): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.registerSale(ctx)
		case "2":
			c.listSales()
		case "3":
			c.salesByLottery()
		case "4":
			c.printf("\nTotal de ventas: %s\n", textutil.FormatCurrency(c.sales.TotalSales()))
		case "5":
			c.showStats()
		case "6":
			err = c.deleteSale(ctx)
		case "7":
			return nil
		default:
			c.println("Opción no válida. Por favor intente de nuevo.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) registerSale(ctx context.Context) error {
	c.println("\n=== Registrar Venta ===")
	lotteryID, err := c.promptInt("Ingrese el ID de la lotería: ")
	if err != nil {
		return err
	}
	fractions, err := c.promptInt("Ingrese la cantidad de fracciones vendidas: ")
	if err != nil {
		return err
	}
	customer, err := c.prompt("Ingrese el nombre del cliente: ")
	if err != nil {
		return err
	}
	seller, err := c.prompt("Ingrese el nombre del vendedor: ")
	if err != nil {
		return err
	}

	if lotteryID <= 0 {
		c.println("Error al registrar la venta: ID de lotería no válido")
		return nil
	}

	sale, err := c.sales.CreateSale(ctx, uint(lotteryID), fractions, customer, seller, models.Date{})
	if err != nil {
		c.printf("Error al registrar la venta: %s\n", err)
		return nil
	}

	c.println("\n¡Venta registrada exitosamente!")
	c.showSale(*sale)
	return nil
}

func (c *Console) listSales() {
	sales := c.sales.ListSales()
	if len(sales) == 0 {
		c.println("\nNo hay ventas registradas.")
		return
	}

	c.println("\nListado de ventas:")
	for _, s := range sales {
		c.println(rule)
		c.showSale(s)
	}
}

func (c *Console) salesByLottery() {
	byLottery := c.sales.TotalsByLottery()
	if len(byLottery) == 0 {
		c.println("\nNo hay ventas registradas.")
		return
	}

	ids := make([]uint, 0, len(byLottery))
	for id := range byLottery {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	c.println("\nVentas por lotería:")
	for _, id := range ids {
		name := fmt.Sprintf("Lotería %d", id)
		if l, err := c.lotteries.GetLotteryByID(id); err == nil {
			name = l.Name
		}
		count := len(c.sales.GetSalesByLottery(id))
		c.printf("%s: %d venta(s), %s\n", name, count, textutil.FormatCurrency(byLottery[id]))
	}
}

func (c *Console) showStats() {
	stats := c.sales.Stats()
	c.println("\nEstadísticas de ventas:")
	c.printf("Cantidad de ventas: %d\n", stats.Count)
	c.printf("Total vendido: %s\n", textutil.FormatCurrency(stats.Total))
	c.printf("Promedio por venta: %s\n", textutil.FormatCurrency(stats.Average))
	if stats.FirstSale != nil {
		c.printf("Primera venta: %s\n", stats.FirstSale)
		c.printf("Última venta: %s\n", stats.LastSale)
	}
}

func (c *Console) deleteSale(ctx context.Context) error {
	id, err := c.promptInt("Ingrese el ID de la venta a eliminar: ")
	if err != nil {
		return err
	}
	if id <= 0 {
		c.println("Venta no encontrada.")
		return nil
	}

	if err := c.sales.DeleteSale(ctx, uint(id)); err != nil {
		if apperrors.IsNotFound(err) {
			c.println("Venta no encontrada.")
		} else {
			c.printf("No se pudo eliminar la venta: %s\n", err)
		}
		return nil
	}
	c.println("¡Venta eliminada exitosamente!")
	return nil
}

func (c *Console) showLottery(l models.Lottery) {
	c.printf("ID: %d\n", l.ID)
	c.printf("Nombre: %s\n", l.Name)
	c.printf("Fracciones por billete: %d\n", l.FractionsPerTicket)
	c.printf("Valor por fracción: %s\n", textutil.FormatCurrency(l.PricePerFraction))
	c.printf("Inventario (fracciones): %d\n", l.InitialInventory)
	c.printf("Cantidad de billetes: %d\n", l.TicketsEquivalent)
	c.printf("Valor por billete: %s\n", textutil.FormatCurrency(l.PricePerTicket))
	c.printf("Valor inventario inicial: %s\n", textutil.FormatCurrency(l.TotalInventoryValue))
}

func (c *Console) showSale(s models.Sale) {
	c.printf("ID venta: %d\n", s.ID)
	c.printf("ID lotería: %d\n", s.LotteryID)
	c.printf("Fracciones vendidas: %d\n", s.FractionsSold)
	c.printf("Cliente: %s\n", s.Customer)
	c.printf("Vendedor: %s\n", s.Seller)
	c.printf("Fecha: %s\n", s.SaleDate)
	c.printf("Valor: %s\n", textutil.FormatCurrency(s.Value))
}

func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptInt re-prompts until the operator enters an integer.
func (c *Console) promptInt(label string) (int, error) {
	for {
		text, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil {
			return n, nil
		}
		c.println("Por favor ingrese un valor numérico válido")
	}
}

// promptDecimal re-prompts until the operator enters a number. Both "," and
// "." are accepted as the decimal separator.
func (c *Console) promptDecimal(label string) (decimal.Decimal, error) {
	for {
		text, err := c.prompt(label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.Replace(text, ",", ".", 1))
		if err == nil {
			return d, nil
		}
		c.println("Por favor ingrese un valor numérico válido")
	}
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
