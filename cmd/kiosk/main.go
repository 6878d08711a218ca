// Command kiosk is a terminal client for the canteen storefront. It keeps
// a local cart on disk and submits orders to the API server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gowthamlakshman94/Canteen-Automation-System/cart"
	"github.com/gowthamlakshman94/Canteen-Automation-System/pkg/price"
)

const usage = `usage: kiosk [flags] <command> [args]

commands:
  menu [category]        list available menu items
  add <title> [qty]      add a menu item to the cart
  qty <title> <n>        change an item's quantity
  remove <title>         remove an item from the cart
  list                   show the cart and its total
  clear                  empty the cart
  checkout <email>       submit the cart as an order
  status                 check the last submitted order
`

func main() {
	server := flag.String("server", envOr("CANTEEN_URL", "http://localhost:3000"), "API server base URL")
	cartPath := flag.String("cart", envOr("KIOSK_CART", "kiosk-cart.json"), "cart storage file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	storage := cart.NewFileStorage(*cartPath)
	k := &kiosk{
		base:    strings.TrimRight(*server, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		store:   cart.NewStore(storage),
		storage: storage,
	}

	if err := k.run(args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "kiosk:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type kiosk struct {
	base    string
	http    *http.Client
	store   *cart.Store
	storage *cart.FileStorage
}

func (k *kiosk) run(cmd string, args []string) error {
	switch cmd {
	case "menu":
		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		return k.menu(category)
	case "add":
		if len(args) < 1 {
			return fmt.Errorf("add: want <title> [qty]")
		}
		qty := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("add: bad quantity %q", args[1])
			}
			qty = n
		}
		return k.add(args[0], qty)
	case "qty":
		if len(args) != 2 {
			return fmt.Errorf("qty: want <title> <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("qty: bad quantity %q", args[1])
		}
		k.store.SetQuantity(args[0], n)
		k.list()
		return nil
	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("remove: want <title>")
		}
		k.store.Remove(args[0])
		k.list()
		return nil
	case "list":
		k.list()
		return nil
	case "clear":
		k.store.Clear()
		fmt.Println("cart cleared")
		return nil
	case "checkout":
		if len(args) != 1 {
			return fmt.Errorf("checkout: want <email>")
		}
		return k.checkout(args[0])
	case "status":
		return k.status()
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

type menuEntry struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func (k *kiosk) fetchMenu(category string) ([]menuEntry, error) {
	url := k.base + "/api/menu"
	if category != "" {
		url += "?category=" + category
	}
	res, err := k.http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", res.Status)
	}
	var body struct {
		Items []menuEntry `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Items, nil
}

func (k *kiosk) menu(category string) error {
	items, err := k.fetchMenu(category)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("no items available")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%-24s %10s  %s\n", it.Name, price.Format(it.Price), it.Category)
	}
	return nil
}

func (k *kiosk) add(title string, qty int) error {
	items, err := k.fetchMenu("")
	if err != nil {
		return err
	}
	for _, it := range items {
		if strings.EqualFold(it.Name, title) {
			k.store.Add(cart.Item{
				Title:    it.Name,
				Price:    it.Price,
				Image:    it.ImageURL,
				Quantity: qty,
			})
			k.list()
			return nil
		}
	}
	return fmt.Errorf("%q is not on the menu", title)
}

func (k *kiosk) list() {
	view := cart.Render(k.store.Items())
	if len(view.Rows) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, row := range view.Rows {
		fmt.Printf("%-24s %2dx %10s = %10s\n", row.Title, row.Quantity, row.UnitPrice, row.LineTotal)
	}
	fmt.Printf("%-24s %26s\n", "total", view.Total)
}

func (k *kiosk) checkout(email string) error {
	payload, err := k.store.PrepareOrder(email)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	res, err := k.http.Post(k.base+"/submitOrder", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var reply struct {
		Message string `json:"message"`
		OrderID int64  `json:"orderId"`
	}
	if err := json.NewDecoder(res.Body).Decode(&reply); err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("order rejected: %s", reply.Message)
	}

	// spend the cart only once the order is acknowledged
	k.store.Clear()
	fmt.Printf("order %d submitted\n", reply.OrderID)
	return nil
}

func (k *kiosk) status() error {
	orderID, ok := k.storage.LastOrderID()
	if !ok {
		return fmt.Errorf("no submitted order on this kiosk")
	}
	res, err := k.http.Get(fmt.Sprintf("%s/checkOrder/%d", k.base, orderID))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var reply struct {
		Exists bool `json:"exists"`
	}
	if err := json.NewDecoder(res.Body).Decode(&reply); err != nil {
		return err
	}
	if reply.Exists {
		fmt.Printf("order %d is on record\n", orderID)
	} else {
		fmt.Printf("order %d was not found\n", orderID)
	}
	return nil
}
