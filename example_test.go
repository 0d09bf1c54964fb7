package mimicdb_test

import (
	"context"
	"fmt"

	"github.com/mimicdb/mimicdb"
)

type M = map[string]any

func ExampleNewClient() {
	// To create a new client, [NewClient] should be called. It creates a
	// new in-memory store, loading default values and interface
	// implementations.
	client := mimicdb.NewClient(
		// If set to true, new docs will be created with the fields
		// `createdAt` and `updatedAt`. If the document is modified,
		// field `updatedAt` will be updated.
		mimicdb.WithTimestamps(false),
		// Length of generated document ids.
		mimicdb.WithIDLength(16),
	)

	// Every operation receives a context argument. This should make
	// concurrently using the store possible. Context allows the user to
	// imediately stop waiting if cancellation occurs before starting the
	// action.
	ctx := context.Background()

	// Databases and collections are created on first access; no setup
	// call is needed.
	characters := client.Database("game").Collection("characters")

	count, _ := characters.Count(ctx, nil)

	fmt.Println(count)
	// Output: 0
}

func ExampleCollection_Insert() {
	client := mimicdb.NewClient()

	ctx := context.Background()

	characters := client.Database("game").Collection("characters")

	// A struct can be defined to make working with the store easier. The
	// struct does not need to be exported, but the fields do.
	type Character struct {
		// untagged exported fields are named as they are
		Name string
		// tagged exported fields are named after the mimicdb tag
		Sty string `mimicdb:"style"`
		// unexported fields are ignored
		country string
		// fields with "-" at the mimicdb tag are also ignored
		Clothes string `mimicdb:"-"`
		// omitempty flag does not allow nil fields.
		Spells []string `mimicdb:",omitempty"`
		// omitzero flag does not allow zero-value fields.
		Games []float64 `mimicdb:",omitzero"`
	}

	gief := Character{
		Name:    "Zangief",
		Sty:     "grappler",
		country: "URSS",
		Clothes: "red",
		Spells:  nil,
		Games:   []float64{2, 3.5, 4, 5, 6},
	}

	// Insert can be called with any object-like document. Since data is
	// converted into an internal document type, the received object is
	// not used afterwards. Instead, a copy is made. Keys should not start
	// with "$", since that is reserved for querying and updating.
	cur, _ := characters.Insert(ctx, gief)

	// When successfully inserted, a cursor containing all inserted data
	// is returned. If the field _id does not exist, it is created. Open
	// cursors should always be closed after use.
	defer cur.Close()

	var inserted M
	for cur.Next() {
		_ = cur.Decode(&inserted)
	}

	fmt.Println(len(inserted))
	fmt.Println(len(inserted["_id"].(string)) > 0)
	fmt.Println(inserted["Name"])
	fmt.Println(inserted["style"])
	fmt.Println(inserted["Games"])

	// Output:
	// 4
	// true
	// Zangief
	// grappler
	// [2 3.5 4 5 6]
}

func ExampleCollection_Find() {
	client := mimicdb.NewClient()

	ctx := context.Background()

	jobs := client.Database("game").Collection("jobs")

	_, _ = jobs.Insert(ctx,
		M{"pos": 1, "Type": "wh.mage"},
		M{"pos": 2, "Type": "bl.mage"},
		M{"pos": 3, "Type": "fighter"},
		M{"pos": 4, "Type": "rogue"},
	)

	// Find uses a mongodb-like api to fetch data from the store. Maps and
	// structs can be used to shape the query as you like.
	cur, _ := jobs.Find(ctx,
		M{"pos": M{"$lte": 3}},
		mimicdb.WithSort(mimicdb.Sort{{Key: "Type", Order: 1}}),
		mimicdb.WithProjection(map[string]int64{"_id": 0, "Type": 1}),
		mimicdb.WithSkip(1),
		mimicdb.WithLimit(2),
	)

	types := make([]M, 0, 2)
	for cur.Next() {
		var m M
		_ = cur.Decode(&m)
		types = append(types, m)
	}

	fmt.Printf("%v", types)
	// Output: [map[Type:fighter] map[Type:wh.mage]]
}

func ExampleCollection_Update() {
	client := mimicdb.NewClient()

	ctx := context.Background()

	news := client.Database("paper").Collection("news")

	_, _ = news.Insert(ctx, M{"date": "yesterday"})

	_, _ = news.Update(ctx,
		M{"date": "yesterday"},
		M{"date": "today"},

		mimicdb.WithUpdateMulti(true),
		mimicdb.WithUpsert(false),
	)

	var m M
	_ = news.FindOne(ctx, nil, &m, mimicdb.WithProjection(map[string]int64{"_id": 0}))

	fmt.Printf("%v", m)
	// Output: map[date:today]
}

func ExampleCollection_Remove() {
	client := mimicdb.NewClient()

	ctx := context.Background()

	entries := client.Database("audit").Collection("entries")

	_, _ = entries.Insert(ctx,
		M{"_id": 1, "valid": true},
		M{"_id": 2, "valid": true},
		M{"_id": 3, "valid": false},
		M{"_id": 4, "valid": true},
		M{"_id": 5, "valid": false},
	)

	_, _ = entries.Remove(ctx, M{"valid": false}, mimicdb.WithRemoveMulti(true))

	cur, _ := entries.Find(ctx, nil, mimicdb.WithProjection(map[string]int64{"valid": 0}))

	data := make([]M, 0, 4)
	for cur.Next() {
		var m M
		_ = cur.Decode(&m)
		data = append(data, m)
	}

	fmt.Printf("%v", data)
	// Output: [map[_id:1] map[_id:2] map[_id:4]]
}

func ExampleClient_Database() {
	client := mimicdb.NewClient()

	ctx := context.Background()

	// Databases are created on first access and listed in lexical order.
	client.Database("beta").Collection("things")
	client.Database("alpha").Collection("things")

	names, _ := client.ListDatabaseNames(ctx)

	fmt.Println(names)
	// Output: [alpha beta]
}
