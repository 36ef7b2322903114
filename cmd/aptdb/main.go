// Command aptdb is the interactive console for the apartment listing
// file: add, edit, and remove listings, run the searches, and sort the
// file.  The data file path comes from DB_FILE_PATH (or a dotenv file)
// and can be overridden with -path.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	aptdb "github.com/vashv1lass/BAaP-labs"
	"github.com/vashv1lass/BAaP-labs/bin_file"
	"github.com/vashv1lass/BAaP-labs/config"
	"github.com/vashv1lass/BAaP-labs/database"
	"github.com/vashv1lass/BAaP-labs/err_def"
	"github.com/vashv1lass/BAaP-labs/executor"
	"github.com/vashv1lass/BAaP-labs/logging"
)

const menu = `
Apartment listings at %s

 1. Add a listing
 2. Edit a listing
 3. Remove a listing
 4. Search by cost
 5. Search by rooms count
 6. Search by cost range and rooms count
 7. Newest unsold listings since a date
 8. Sort the file by cost
 9. Sort the file by area
10. Sort the file by addition date
11. Print every listing
12. Quit
`

func main() {
	var flagPath string
	var flagEnv string
	flag.StringVar(&flagPath, "path", "", "data file path (overrides DB_FILE_PATH)")
	flag.StringVar(&flagEnv, "env", "", "dotenv file to load instead of .env")
	flag.Parse()

	var cfg *config.Config
	if flagEnv != "" {
		cfg = config.Load(flagEnv)
	} else {
		cfg = config.Load()
	}
	path := cfg.DBFilePath
	if flagPath != "" {
		path = flagPath
	}

	logger, closeLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLogger()

	in := bufio.NewReader(os.Stdin)
	if err := ensureDataFile(in, path, logger); err != nil {
		fmt.Println(userMessage(err))
		os.Exit(1)
	}
	runMenu(in, path, logger)
}

func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		return logging.New(os.Stderr, level, cfg.NoColor), func() {}, nil
	}
	f, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level, true), func() { f.Close() }, nil
}

func ensureDataFile(in *bufio.Reader, path string, logger *slog.Logger) error {
	if bin_file.Exists(path) {
		return nil
	}
	ok, err := readYesNo(in, fmt.Sprintf("No data file at %s; create it? [y/N] ", path))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no data file to work on", err_def.ErrInvalidArgument)
	}
	if err := bin_file.Create(path, false); err != nil {
		return err
	}
	logger.Info("created data file", "path", path)
	return nil
}

func runMenu(in *bufio.Reader, path string, logger *slog.Logger) {
	for {
		fmt.Printf(menu, path)
		choice, err := readInt32(in, "> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Println(userMessage(err))
			continue
		}
		if choice == 12 {
			fmt.Println("Bye.")
			return
		}
		opLogger := logger.With("op_id", uuid.NewString(), "choice", choice)
		if err := dispatch(in, path, choice, opLogger); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			opLogger.Error("operation failed", "err", err)
			fmt.Println(userMessage(err))
		}
	}
}

func dispatch(in *bufio.Reader, path string, choice int32, logger *slog.Logger) error {
	switch choice {
	case 1:
		return handleAdd(in, path, logger)
	case 2:
		return handleEdit(in, path, logger)
	case 3:
		return handleRemove(in, path, logger)
	case 4:
		return handleSearchByCost(in, path, logger)
	case 5:
		return handleSearchByRoomsCount(in, path, logger)
	case 6:
		return handleSearchByCostRangeAndRooms(in, path, logger)
	case 7:
		return handleSearchNewestFree(in, path, logger)
	case 8:
		return handleSort(path, "cost", executor.SortByCost, logger)
	case 9:
		return handleSort(path, "area", executor.SortByArea, logger)
	case 10:
		return handleSort(path, "addition date", executor.SortByAdditionDate, logger)
	case 11:
		return handlePrintAll(path, logger)
	default:
		return fmt.Errorf("%w: menu option %d", err_def.ErrInvalidArgument, choice)
	}
}

func handleAdd(in *bufio.Reader, path string, logger *slog.Logger) error {
	listing, err := readApartment(in)
	if err != nil {
		return err
	}
	if err := executor.Add(path, listing); err != nil {
		return err
	}
	fmt.Println("Listing stored.")
	logger.Info("listing added", "address", listing.Address, "cost", listing.Cost)
	return nil
}

func handleEdit(in *bufio.Reader, path string, logger *slog.Logger) error {
	id, err := readInt32(in, "Identifier to edit: ")
	if err != nil {
		return err
	}
	fmt.Println("New field values:")
	replacement, err := readApartment(in)
	if err != nil {
		return err
	}
	if err := executor.Edit(path, id, replacement); err != nil {
		return err
	}
	fmt.Println("Listing replaced.")
	logger.Info("listing edited", "id", id)
	return nil
}

func handleRemove(in *bufio.Reader, path string, logger *slog.Logger) error {
	id, err := readInt32(in, "Identifier to remove: ")
	if err != nil {
		return err
	}
	if err := executor.Remove(path, id); err != nil {
		return err
	}
	fmt.Println("Listing removed.")
	logger.Info("listing removed", "id", id)
	return nil
}

func handleSearchByCost(in *bufio.Reader, path string, logger *slog.Logger) error {
	cost, err := readFloat32(in, "Cost: ")
	if err != nil {
		return err
	}
	found, err := executor.SearchByCost(path, cost)
	if err != nil {
		return err
	}
	printFound(found)
	logger.Info("search by cost", "cost", cost, "matches", len(found))
	return nil
}

func handleSearchByRoomsCount(in *bufio.Reader, path string, logger *slog.Logger) error {
	roomsCount, err := readInt32(in, "Rooms count: ")
	if err != nil {
		return err
	}
	found, err := executor.SearchByRoomsCount(path, roomsCount)
	if err != nil {
		return err
	}
	printFound(found)
	logger.Info("search by rooms count", "rooms", roomsCount, "matches", len(found))
	return nil
}

func handleSearchByCostRangeAndRooms(in *bufio.Reader, path string, logger *slog.Logger) error {
	lo, err := readFloat32(in, "Cost from: ")
	if err != nil {
		return err
	}
	hi, err := readFloat32(in, "Cost to: ")
	if err != nil {
		return err
	}
	roomsCount, err := readInt32(in, "Rooms count: ")
	if err != nil {
		return err
	}
	found, err := executor.SearchByCostRangeAndRooms(path, lo, hi, roomsCount)
	if err != nil {
		return err
	}
	printFound(found)
	logger.Info("search by cost range and rooms",
		"lo", lo, "hi", hi, "rooms", roomsCount, "matches", len(found))
	return nil
}

func handleSearchNewestFree(in *bufio.Reader, path string, logger *slog.Logger) error {
	after, err := readDate(in, "Added after (D.M.YYYY): ")
	if err != nil {
		return err
	}
	found, err := executor.SearchNewestFree(path, after)
	if err != nil {
		return err
	}
	printFound(found)
	logger.Info("search newest free", "after", after.String(), "matches", len(found))
	return nil
}

func handleSort(path, field string, sort func(string) error, logger *slog.Logger) error {
	if err := sort(path); err != nil {
		return err
	}
	fmt.Printf("File sorted by %s.\n", field)
	logger.Info("file sorted", "by", field)
	return nil
}

func handlePrintAll(path string, logger *slog.Logger) error {
	records, err := database.LoadAll(path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("The file is empty.")
	} else {
		printFound(records)
	}
	logger.Info("printed all listings", "records", len(records))
	return nil
}

func printFound(records []aptdb.Apartment) {
	if len(records) == 0 {
		fmt.Println("Nothing matched.")
		return
	}
	fmt.Printf("Found %d listing(s):\n", len(records))
	for _, record := range records {
		fmt.Println("  " + record.String())
	}
}

// userMessage turns an error kind into the line shown to the operator.
func userMessage(err error) string {
	switch {
	case errors.Is(err, err_def.ErrNotFound):
		return "No listing carries that identifier."
	case errors.Is(err, err_def.ErrConflict):
		return "The file carries duplicate identifiers and needs repair."
	case errors.Is(err, err_def.ErrCorruption):
		return "The data file is damaged: its size does not divide into records."
	case errors.Is(err, err_def.ErrAlreadyExists):
		return "A file already exists at that path."
	case errors.Is(err, err_def.ErrInvalidArgument):
		return "Rejected: " + err.Error()
	default:
		return "Operation failed: " + err.Error()
	}
}

func readApartment(in *bufio.Reader) (aptdb.Apartment, error) {
	var (
		listing aptdb.Apartment
		err     error
	)
	if listing.ID, err = readInt32(in, "Identifier (0 assigns the next free one): "); err != nil {
		return aptdb.Apartment{}, err
	}
	if listing.Address, err = readLine(in, "Address: "); err != nil {
		return aptdb.Apartment{}, err
	}
	if listing.RoomsCount, err = readInt32(in, "Rooms count: "); err != nil {
		return aptdb.Apartment{}, err
	}
	if listing.Area, err = readFloat32(in, "Area, m2: "); err != nil {
		return aptdb.Apartment{}, err
	}
	if listing.Floor, err = readInt32(in, "Floor: "); err != nil {
		return aptdb.Apartment{}, err
	}
	if listing.Cost, err = readFloat32(in, "Cost: "); err != nil {
		return aptdb.Apartment{}, err
	}
	if listing.Sold, err = readYesNo(in, "Sold? [y/N] "); err != nil {
		return aptdb.Apartment{}, err
	}
	if listing.Added, err = readDate(in, "Addition date (D.M.YYYY): "); err != nil {
		return aptdb.Apartment{}, err
	}
	return listing, nil
}

func readLine(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readInt32(in *bufio.Reader, prompt string) (int32, error) {
	line, err := readLine(in, prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", err_def.ErrInvalidArgument, line)
	}
	return int32(v), nil
}

func readFloat32(in *bufio.Reader, prompt string) (float32, error) {
	line, err := readLine(in, prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(line, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", err_def.ErrInvalidArgument, line)
	}
	return float32(v), nil
}

func readYesNo(in *bufio.Reader, prompt string) (bool, error) {
	line, err := readLine(in, prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func readDate(in *bufio.Reader, prompt string) (aptdb.Date, error) {
	line, err := readLine(in, prompt)
	if err != nil {
		return aptdb.Date{}, err
	}
	return aptdb.ParseDate(line)
}
