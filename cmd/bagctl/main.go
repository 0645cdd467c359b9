package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leonnmarcoo/Apple-store/internal/bag"
	"github.com/leonnmarcoo/Apple-store/internal/catalog"
	"github.com/leonnmarcoo/Apple-store/internal/checkout"
	"github.com/leonnmarcoo/Apple-store/internal/money"
)

const usage = `Usage: bagctl [flags] <command> [args]

Commands:
  list                 show the bag contents
  add <product-id>     add one unit of a product to the bag
  remove <product-id>  remove a product from the bag
  set-qty <product-id> <n>  set a product's quantity
  total                print the bag total
  checkout             place an order for the bag contents

Flags:
`

func main() {
	server := flag.String("server", "http://localhost:8080", "store server base URL")
	bagDir := flag.String("bag-dir", defaultBagDir(), "directory for the bag file")
	redisAddr := flag.String("redis", "", "use Redis bag storage at this address instead of a file")
	user := flag.String("user", "local", "bag scope when using Redis storage")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store := bag.NewStore(newStorage(ctx, *bagDir, *redisAddr, *user))

	switch args[0] {
	case "list":
		listBag(ctx, store)
	case "add":
		requireArg(args, 2)
		addProduct(ctx, store, *server, args[1])
	case "remove":
		requireArg(args, 2)
		contents := store.Load(ctx)
		if _, err := store.Remove(ctx, contents, args[1]); err != nil {
			log.Fatalf("Failed to remove product: %v", err)
		}
	case "set-qty":
		requireArg(args, 3)
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			log.Fatalf("Invalid quantity %q", args[2])
		}
		contents := store.Load(ctx)
		if _, err := store.SetQuantity(ctx, contents, args[1], qty); err != nil {
			log.Fatalf("Failed to set quantity: %v", err)
		}
	case "total":
		fmt.Println(store.Load(ctx).Total())
	case "checkout":
		runCheckout(ctx, store, *server, *timeout)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func newStorage(ctx context.Context, dir, redisAddr, user string) bag.Storage {
	if redisAddr == "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create bag directory: %v", err)
		}
		return bag.NewFileStorage(dir)
	}
	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	return bag.NewRedisStorage(client, user)
}

func listBag(ctx context.Context, store *bag.Store) {
	contents := store.Load(ctx)
	if len(contents) == 0 {
		fmt.Println("The bag is empty")
		return
	}
	for _, item := range contents {
		fmt.Printf("%-30s x%-3d %s\n", item.Name, item.Quantity, item.Price.Mul(item.Quantity))
	}
	fmt.Printf("%-30s      %s\n", "Total", contents.Total())
}

// addProduct snapshots the product's current listing into the bag.
func addProduct(ctx context.Context, store *bag.Store, server, productID string) {
	product, err := fetchProduct(ctx, server, productID)
	if err != nil {
		log.Fatalf("Failed to fetch product %s: %v", productID, err)
	}

	contents := store.Load(ctx)
	_, err = store.Add(ctx, contents, bag.Product{
		ID:    product.ID,
		Name:  product.Name,
		Price: money.FromFloat(product.Price),
		Image: product.Image,
	})
	if err != nil {
		log.Fatalf("Failed to add product: %v", err)
	}
	fmt.Printf("Added %s (%s)\n", product.Name, money.FromFloat(product.Price))
}

func fetchProduct(ctx context.Context, server, productID string) (*catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server+"/api/products/"+productID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}

	var product catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

func runCheckout(ctx context.Context, store *bag.Store, server string, timeout time.Duration) {
	coordinator := checkout.NewCoordinator(store, checkout.NewClient(server, timeout))
	orderID, err := coordinator.Checkout(ctx)
	if err != nil {
		log.Fatalf("Checkout failed: %v", err)
	}
	fmt.Printf("Order placed: %s\n", orderID)
}

func requireArg(args []string, n int) {
	if len(args) < n {
		flag.Usage()
		os.Exit(2)
	}
}

func defaultBagDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "apple-store")
}
