// Command shop is a terminal storefront for trying the services without
// a browser. It talks to the same commerce API (or local JSON files) as
// the HTTP server.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/awe-electronics/storefront/internal/backend"
	"github.com/awe-electronics/storefront/internal/cart"
	"github.com/awe-electronics/storefront/internal/catalog"
	"github.com/awe-electronics/storefront/internal/checkout"
	"github.com/awe-electronics/storefront/internal/config"
	"github.com/awe-electronics/storefront/internal/identity"
	"github.com/awe-electronics/storefront/internal/localstore"
	"github.com/awe-electronics/storefront/internal/orders"
	"github.com/awe-electronics/storefront/internal/wishlist"
)

type shop struct {
	in       *bufio.Scanner
	store    *catalog.Store
	cart     *cart.Service
	wishlist *wishlist.Service
	checkout *checkout.Checkout
	history  interface {
		ListOrders(ctx context.Context, userID string) ([]orders.Order, error)
	}
	session identity.Session
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad configuration:", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	session := askSession(in)
	s := build(cfg, in, session)

	ctx := context.Background()
	if err := s.cart.Load(ctx); err != nil {
		fmt.Println("(cart not synced:", err, ")")
	}
	if err := s.wishlist.Load(ctx); err != nil {
		fmt.Println("(wishlist not synced:", err, ")")
	}

	// change notifications, printed as they happen
	s.cart.Subscribe(func(e cart.Event) {
		fmt.Printf("  [cart %s] %d item(s), $%.2f total\n", e.Type, s.cart.Count(), s.cart.Total())
	})
	s.wishlist.Subscribe(func(e wishlist.Event) {
		fmt.Printf("  [wishlist %s] %d item(s)\n", e.Type, s.wishlist.Count())
	})

	fmt.Printf("Welcome, %s!\n", s.session.UserID)
	s.menu(ctx)
}

func askSession(in *bufio.Scanner) identity.Session {
	for {
		fmt.Print("Your name: ")
		if !in.Scan() {
			os.Exit(0)
		}
		session, err := identity.NewSession(in.Text())
		if err == nil {
			return session
		}
		fmt.Println("Please enter a name.")
	}
}

func build(cfg config.Config, in *bufio.Scanner, session identity.Session) *shop {
	client := backend.NewClient(cfg.BackendURL, nil)
	s := &shop{in: in, session: session, store: catalog.NewStore(client)}

	if cfg.CartBackend == config.BackendLocal {
		files := localstore.New(cfg.DataDir)
		history := orders.NewFileHistory(files)
		s.cart = cart.NewService(cart.NewFileBackend(files, session.UserID))
		s.wishlist = wishlist.NewService(wishlist.NewFileBackend(files, session.UserID))
		s.checkout = checkout.New(session, s.cart, history)
		s.history = history
		return s
	}

	s.cart = cart.NewService(backend.NewRemoteCartBackend(client, session.UserID))
	s.wishlist = wishlist.NewService(backend.NewRemoteWishlistBackend(client, session.UserID))
	s.checkout = checkout.New(session, s.cart, client)
	s.history = client
	return s
}

func (s *shop) menu(ctx context.Context) {
	for {
		fmt.Print("\n[1] browse  [2] search  [3] cart  [4] wishlist  [5] checkout  [6] orders  [q] quit\n> ")
		if !s.in.Scan() {
			return
		}
		switch strings.TrimSpace(s.in.Text()) {
		case "1":
			s.browse(ctx, "")
		case "2":
			s.browse(ctx, s.ask("Search for: "))
		case "3":
			s.showCart(ctx)
		case "4":
			s.showWishlist(ctx)
		case "5":
			s.runCheckout(ctx)
		case "6":
			s.showOrders(ctx)
		case "q", "quit", "exit":
			fmt.Println("Bye!")
			return
		}
	}
}

func (s *shop) ask(prompt string) string {
	fmt.Print(prompt)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *shop) browse(ctx context.Context, query string) {
	result := s.store.Query(ctx, catalog.Filter{Search: query}, catalog.SortFeatured, nil)
	if len(result.Products) == 0 {
		fmt.Println("No products found.")
		return
	}
	for i, p := range result.Products {
		stock := "in stock"
		if !p.InStock() {
			stock = "out of stock"
		}
		fmt.Printf("%2d. %-30s $%8.2f  %.1f*  %s\n", i+1, p.Name, p.Price, p.Rating, stock)
	}

	choice := s.ask("Add to [c]art, [w]ishlist, or enter to go back: ")
	if choice != "c" && choice != "w" {
		return
	}
	n, err := strconv.Atoi(s.ask("Which number? "))
	if err != nil || n < 1 || n > len(result.Products) {
		fmt.Println("Not a listed product.")
		return
	}
	p := result.Products[n-1]

	if choice == "w" {
		if _, err := s.wishlist.Toggle(ctx, p); err != nil {
			fmt.Println("Wishlist update failed:", err)
		}
		return
	}
	qty, err := strconv.Atoi(s.ask("Quantity: "))
	if err != nil || qty < 1 {
		qty = 1
	}
	if err := s.cart.Add(ctx, p, qty); err != nil {
		fmt.Println("Could not add to cart:", err)
	}
}

func (s *shop) showCart(ctx context.Context) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	for _, l := range lines {
		fmt.Printf("  %dx %-30s $%8.2f\n", l.Quantity, l.Name, l.Price*float64(l.Quantity))
	}
	fmt.Printf("  Total: $%.2f\n", s.cart.Total())

	if id := s.ask("Product id to remove (enter to skip): "); id != "" {
		removed, err := s.cart.Remove(ctx, id)
		if err != nil {
			fmt.Println("Remove failed:", err)
		} else if !removed {
			fmt.Println("Not in your cart.")
		}
	}
}

func (s *shop) showWishlist(ctx context.Context) {
	products := s.wishlist.Products()
	if len(products) == 0 {
		fmt.Println("Your wishlist is empty.")
		return
	}
	for _, p := range products {
		fmt.Printf("  %-30s $%8.2f  (%s)\n", p.Name, p.Price, p.ID)
	}
	if id := s.ask("Product id to remove (enter to skip): "); id != "" {
		if _, err := s.wishlist.Remove(ctx, catalog.Product{ID: id}); err != nil {
			fmt.Println("Remove failed:", err)
		}
	}
}

func (s *shop) runCheckout(ctx context.Context) {
	if s.cart.Count() == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	if code := s.ask("Promo code (enter to skip): "); code != "" {
		discount, err := s.checkout.ApplyPromo(code)
		if errors.Is(err, checkout.ErrInvalidPromo) {
			fmt.Println("That code is not valid.")
		} else {
			fmt.Printf("Discount applied: -$%.2f\n", discount)
		}
	}
	fmt.Printf("Order total: $%.2f\n", s.checkout.Total())

	customer := orders.Customer{
		Name:    s.session.UserID,
		Email:   s.ask("Email: "),
		Phone:   s.ask("Phone: "),
		Address: s.ask("Address: "),
		Notes:   s.ask("Notes (optional): "),
	}

	order, err := s.checkout.Submit(ctx, customer)
	switch {
	case errors.Is(err, orders.ErrEmptyCart):
		fmt.Println("Your cart is empty.")
	case err != nil:
		fmt.Println("Order failed:", err)
	default:
		fmt.Printf("Order %s placed! Final total $%.2f\n", order.OrderID, order.FinalTotal)
		s.checkout.Reset()
	}
}

func (s *shop) showOrders(ctx context.Context) {
	list, err := s.history.ListOrders(ctx, s.session.UserID)
	if err != nil {
		fmt.Println("Could not load orders:", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("No orders yet.")
		return
	}
	for _, o := range list {
		fmt.Printf("  %s  %s  %d item(s)  $%.2f\n",
			o.PlacedAt.Format("2006-01-02 15:04"), o.OrderID, len(o.Items), o.FinalTotal)
	}
}
