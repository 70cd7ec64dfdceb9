package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:9000/api/v1/orders/"
	fixedID = "7a0f8c2e-3d41-4b9a-9a6f-2c5d8e1b0f43"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID() string {
	return fmt.Sprintf("%08x-%04x-4%03x-%04x-%012x",
		rand.Int31(), rand.Intn(0xffff), rand.Intn(0xfff), rand.Intn(0xffff), rand.Int63n(1<<48))
}

func doRequest() {
	id := fixedID
	if rand.Intn(5) == 0 {
		id = randomID()
	}

	url := baseURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
